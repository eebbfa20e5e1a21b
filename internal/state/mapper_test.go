package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperScalesToViewport(t *testing.T) {
	m := &Mapper{
		Surface:  FixedSurface{X: 100, Y: 50, Width: 400, Height: 200},
		Viewport: Viewport{Width: 800, Height: 400},
	}

	got, ok := m.Map(MouseAt(150, 100))
	require.True(t, ok)
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 100, got.Y, 1e-9)
	assert.Equal(t, RegionLeft, got.Region)

	got, ok = m.Map(MouseAt(300, 100))
	require.True(t, ok)
	assert.InDelta(t, 400, got.X, 1e-9)
	assert.Equal(t, RegionRight, got.Region, "the midline belongs to the right region")
}

func TestMapperTouchUsesFirstTouch(t *testing.T) {
	m := &Mapper{Surface: FixedSurface{Width: 800, Height: 400}, Viewport: DefaultViewport}

	got, ok := m.Map(TouchAt(Point{X: 600, Y: 20}, Point{X: 10, Y: 10}))
	require.True(t, ok)
	assert.Equal(t, Point{X: 600, Y: 20}, got.Point)
	assert.Equal(t, RegionRight, got.Region)
}

func TestMapperUnavailableSurface(t *testing.T) {
	var nilMapper *Mapper
	_, ok := nilMapper.Map(MouseAt(1, 1))
	assert.False(t, ok)

	_, ok = (&Mapper{Viewport: DefaultViewport}).Map(MouseAt(1, 1))
	assert.False(t, ok)

	_, ok = (&Mapper{Surface: FixedSurface{}, Viewport: DefaultViewport}).Map(MouseAt(1, 1))
	assert.False(t, ok, "a surface with no size is not laid out yet")
}

func TestMapperToScreenRoundTrip(t *testing.T) {
	m := &Mapper{
		Surface:  FixedSurface{X: 10, Y: 20, Width: 1600, Height: 800},
		Viewport: DefaultViewport,
	}
	screen, ok := m.ToScreen(Point{X: 200, Y: 150})
	require.True(t, ok)

	back, ok := m.Map(MouseAt(screen.X, screen.Y))
	require.True(t, ok)
	assert.InDelta(t, 200, back.X, 1e-9)
	assert.InDelta(t, 150, back.Y, 1e-9)
}

func TestRegionAt(t *testing.T) {
	assert.Equal(t, RegionLeft, RegionAt(0, 800))
	assert.Equal(t, RegionLeft, RegionAt(399.99, 800))
	assert.Equal(t, RegionRight, RegionAt(400, 800))
	assert.Equal(t, RegionRight, RegionAt(799, 800))
}
