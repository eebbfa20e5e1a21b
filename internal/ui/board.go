package ui

import (
	"image/color"
	"log"
	"strings"
	"sync"

	"LashMap/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// PlaceholderText is shown by a read-only board with nothing on it.
const PlaceholderText = "No mapping data"

var (
	outlineColor = color.NRGBA{R: 150, G: 150, B: 160, A: 255}
	dividerColor = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	handleColor  = color.NRGBA{R: 30, G: 120, B: 230, A: 255}
)

// BoardWidget renders an Editor and feeds it mouse and touch input.
type BoardWidget struct {
	widget.BaseWidget
	editor *state.Editor

	mu         sync.Mutex
	background *canvas.Image
	bgRef      string
	OnChanged  func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)
var _ state.Surface = (*BoardWidget)(nil)

func NewBoardWidget(ed *state.Editor) *BoardWidget {
	b := &BoardWidget{editor: ed}
	b.ExtendBaseWidget(b)
	ed.AttachSurface(b)
	return b
}

func (b *BoardWidget) Editor() *state.Editor {
	return b.editor
}

// Bounds implements state.Surface. Fyne delivers event positions relative to
// the widget, so the box starts at the origin.
func (b *BoardWidget) Bounds() (state.Bounds, bool) {
	size := b.Size()
	return state.Bounds{Width: float64(size.Width), Height: float64(size.Height)},
		size.Width > 0 && size.Height > 0
}

// Sync redraws the board from any goroutine, e.g. after a remote snapshot.
func (b *BoardWidget) Sync() {
	fyne.Do(b.changed)
}

func (b *BoardWidget) changed() {
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

func pointer(pos fyne.Position) state.PointerEvent {
	return state.MouseAt(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.editor.Press(pointer(e.Position))
	b.changed()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.editor.Release()
	b.changed()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.editor.Move(pointer(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	b.editor.Release()
	b.changed()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.editor.Move(pointer(e.Position))
}

func (b *BoardWidget) MouseOut() {
	b.editor.Leave()
	b.changed()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	pos := e.Position
	b.editor.Press(state.TouchAt(state.Point{X: float64(pos.X), Y: float64(pos.Y)}))
	b.changed()
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.editor.Release()
	b.changed()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.editor.Leave()
	b.changed()
}

// backgroundImage loads the referenced image once per reference.
func (b *BoardWidget) backgroundImage(ref string) *canvas.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ref == "" {
		b.background, b.bgRef = nil, ""
		return nil
	}
	if ref == b.bgRef {
		return b.background
	}

	var img *canvas.Image
	if strings.Contains(ref, "://") {
		uri, err := storage.ParseURI(ref)
		if err != nil {
			log.Printf("[UI] Bad background reference %q: %v", ref, err)
			return nil
		}
		img = canvas.NewImageFromURI(uri)
	} else {
		img = canvas.NewImageFromFile(ref)
	}
	img.FillMode = canvas.ImageFillStretch
	b.background, b.bgRef = img, ref
	return img
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.paper = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board *BoardWidget
	paper *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	ed := r.board.editor
	snap := ed.Snapshot()
	size := r.board.Size()
	m := &state.Mapper{
		Surface:  state.FixedSurface{Width: float64(size.Width), Height: float64(size.Height)},
		Viewport: ed.Viewport(),
	}
	toPos := func(p state.Point) fyne.Position {
		s, _ := m.ToScreen(p)
		return fyne.NewPos(float32(s.X), float32(s.Y))
	}
	scale := float32(1)
	if vp := ed.Viewport(); vp.Width > 0 {
		scale = size.Width / float32(vp.Width)
	}

	objects := []fyne.CanvasObject{r.paper}
	if img := r.board.backgroundImage(snap.BackgroundImageRef); img != nil {
		img.Move(fyne.NewPos(0, 0))
		img.Resize(size)
		objects = append(objects, img)
	}

	divider := canvas.NewLine(dividerColor)
	divider.Position1 = fyne.NewPos(size.Width/2, 0)
	divider.Position2 = fyne.NewPos(size.Width/2, size.Height)
	objects = append(objects, divider)

	for _, region := range state.Regions {
		objects = append(objects, polyline(state.EyeOutline(region, ed.Viewport()), outlineColor, 1.5, toPos)...)
	}

	rotating := ed.Mode() == state.ModeRotate && !ed.ReadOnly()
	for _, region := range state.Regions {
		for _, p := range snap.Paths(region) {
			objects = append(objects, polyline(p.Points, state.ParseColor(p.Color), float32(p.StrokeWidth)*scale, toPos)...)
			if rotating && p.Kind == state.KindTemplate && len(p.Points) >= 2 {
				objects = append(objects, handle(toPos(p.End()), float32(state.HandleRadius)*scale/2))
			}
		}
	}
	if preview, ok := ed.Preview(); ok {
		objects = append(objects, polyline(preview.Points, state.ParseColor(preview.Color), float32(preview.StrokeWidth)*scale, toPos)...)
	}

	for _, region := range state.Regions {
		for _, lbl := range snap.Labels(region) {
			objects = append(objects, labelText(lbl, toPos, scale))
		}
	}

	if ed.ReadOnly() && snap.Empty() {
		txt := canvas.NewText(PlaceholderText, outlineColor)
		txt.TextSize = 16
		ms := txt.MinSize()
		txt.Move(fyne.NewPos((size.Width-ms.Width)/2, (size.Height-ms.Height)/2))
		objects = append(objects, txt)
	}
	return objects
}

func polyline(points []state.Point, c color.Color, width float32, toPos func(state.Point) fyne.Position) []fyne.CanvasObject {
	if len(points) < 2 {
		return nil
	}
	segments := make([]fyne.CanvasObject, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		seg := canvas.NewLine(c)
		seg.StrokeWidth = width
		seg.Position1 = toPos(points[i-1])
		seg.Position2 = toPos(points[i])
		segments = append(segments, seg)
	}
	return segments
}

func handle(center fyne.Position, radius float32) fyne.CanvasObject {
	c := canvas.NewCircle(color.White)
	c.StrokeColor = handleColor
	c.StrokeWidth = 2
	c.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	c.Resize(fyne.NewSize(2*radius, 2*radius))
	return c
}

func labelText(lbl state.LengthLabel, toPos func(state.Point) fyne.Position, scale float32) fyne.CanvasObject {
	txt := canvas.NewText(lbl.Text(), color.Black)
	txt.TextSize = float32(state.LabelFontSize) * scale
	txt.TextStyle = fyne.TextStyle{Bold: true}
	ms := txt.MinSize()
	pos := toPos(state.Point{X: lbl.X, Y: lbl.Y})
	txt.Move(fyne.NewPos(pos.X-ms.Width/2, pos.Y-ms.Height/2))
	return txt
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.paper.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 200)
}

func (r *boardRenderer) Destroy() {}
