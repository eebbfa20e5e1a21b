package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLabelCentersInBothRegions(t *testing.T) {
	e, rec := newTestEditor(t)

	ids := e.AddLabel(12)
	e.Flush()

	require.Len(t, ids, 2)
	s := e.Snapshot()
	require.Len(t, s.LeftLabels, 1)
	require.Len(t, s.RightLabels, 1)
	assert.Equal(t, 12, s.LeftLabels[0].Length)
	assert.Equal(t, "12mm", s.LeftLabels[0].Text())
	assert.Equal(t, Point{X: 200, Y: 200}, Point{X: s.LeftLabels[0].X, Y: s.LeftLabels[0].Y})
	assert.Equal(t, Point{X: 600, Y: 200}, Point{X: s.RightLabels[0].X, Y: s.RightLabels[0].Y})
	assert.Equal(t, 1, rec.count())
}

func TestAddLabelRejectsOutOfRangeLength(t *testing.T) {
	e, rec := newTestEditor(t)

	assert.Empty(t, e.AddLabel(7))
	assert.Empty(t, e.AddLabel(19))
	_, ok := e.AddLabelTo(RegionLeft, 20)
	assert.False(t, ok)
	e.Flush()

	assert.True(t, e.Snapshot().Empty())
	assert.Zero(t, rec.count())
}

func TestDragLabelWithinRegion(t *testing.T) {
	e, rec := newTestEditor(t)
	id, ok := e.AddLabelTo(RegionLeft, 12)
	require.True(t, ok)
	require.True(t, e.SetMode(ModeLabel))

	press(e, 200, 200)
	move(e, 50, 50)
	e.Release()
	e.Flush()

	lbl := e.Snapshot().LeftLabels[0]
	assert.Equal(t, id, lbl.ID)
	assert.Equal(t, 50.0, lbl.X)
	assert.Equal(t, 50.0, lbl.Y)
	assert.Equal(t, 2, rec.count(), "add and drag release")

	// a drag whose pointer resolves to the right region is a no-op
	press(e, 50, 50)
	move(e, 600, 60)
	e.Release()

	lbl = e.Snapshot().LeftLabels[0]
	assert.Equal(t, RegionLeft, lbl.Region)
	assert.Equal(t, 50.0, lbl.X)
	assert.Equal(t, 50.0, lbl.Y)
}

func TestLabelPressMissDoesNotDrag(t *testing.T) {
	e, rec := newTestEditor(t)
	e.AddLabelTo(RegionLeft, 10)
	require.True(t, e.SetMode(ModeLabel))
	e.Flush()

	press(e, 20, 380)
	move(e, 60, 60)
	e.Release()
	e.Flush()

	lbl := e.Snapshot().LeftLabels[0]
	assert.Equal(t, 200.0, lbl.X)
	assert.Equal(t, 1, rec.count())
}

func TestRemoveLabel(t *testing.T) {
	e, _ := newTestEditor(t)
	ids := e.AddLabel(14)
	require.Len(t, ids, 2)

	assert.True(t, e.RemoveLabel(ids[1]))
	assert.False(t, e.RemoveLabel(ids[1]))

	s := e.Snapshot()
	assert.Len(t, s.LeftLabels, 1)
	assert.Empty(t, s.RightLabels)
}
