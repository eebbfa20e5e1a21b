package ui

import (
	"testing"

	"LashMap/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, opts state.Options) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	opts.Viewport = state.Viewport{Width: 800, Height: 400}
	ed := state.NewEditor(opts)
	t.Cleanup(ed.Close)
	b := NewBoardWidget(ed)
	b.Resize(fyne.NewSize(800, 400))
	return b
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func texts(b *BoardWidget) []string {
	var out []string
	for _, o := range test.WidgetRenderer(b).Objects() {
		if txt, ok := o.(*canvas.Text); ok {
			out = append(out, txt.Text)
		}
	}
	return out
}

func TestBoardPlacesTemplateOnClick(t *testing.T) {
	b := newTestBoard(t, state.Options{})
	require.True(t, b.Editor().SelectTemplate("long"))

	b.MouseDown(primary(200, 150))
	b.MouseUp(primary(200, 150))

	paths := b.Editor().Snapshot().LeftPaths
	require.Len(t, paths, 1)
	assert.Equal(t, []state.Point{{X: 200, Y: 150}, {X: 200, Y: 350}}, paths[0].Points)
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b := newTestBoard(t, state.Options{})
	require.True(t, b.Editor().SelectTemplate("short"))

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 150)},
		Button:     desktop.MouseButtonSecondary,
	})

	assert.True(t, b.Editor().Snapshot().Empty())
}

func TestBoardScalesToViewport(t *testing.T) {
	b := newTestBoard(t, state.Options{})
	b.Resize(fyne.NewSize(400, 200))
	require.True(t, b.Editor().SelectTemplate("short"))

	b.MouseDown(primary(300, 50))
	b.MouseUp(primary(300, 50))

	paths := b.Editor().Snapshot().RightPaths
	require.Len(t, paths, 1)
	assert.Equal(t, state.Point{X: 600, Y: 100}, paths[0].Start())
}

func TestReadOnlyBoardShowsPlaceholder(t *testing.T) {
	b := newTestBoard(t, state.Options{ReadOnly: true})

	assert.Contains(t, texts(b), PlaceholderText)

	b.Editor().Hydrate(state.Snapshot{
		LeftLabels: []state.LengthLabel{{ID: "l", Region: state.RegionLeft, Length: 12, X: 100, Y: 100}},
	})
	b.Refresh()
	got := texts(b)
	assert.NotContains(t, got, PlaceholderText)
	assert.Contains(t, got, "12mm")
}
