package state

// Bounds is the on-screen bounding box of the rendering surface, in the same
// units as the pointer events it receives.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Surface reports where the annotation surface currently sits. ok is false
// while the surface is not available (not yet laid out, or torn down).
type Surface interface {
	Bounds() (b Bounds, ok bool)
}

// FixedSurface is a Surface with constant bounds.
type FixedSurface Bounds

func (s FixedSurface) Bounds() (Bounds, bool) {
	return Bounds(s), s.Width > 0 && s.Height > 0
}

// PointerEvent covers both mouse and touch input. When Touches is non-empty
// the first touch is used, otherwise ClientX/ClientY.
type PointerEvent struct {
	ClientX float64
	ClientY float64
	Touches []Point
}

func MouseAt(x, y float64) PointerEvent {
	return PointerEvent{ClientX: x, ClientY: y}
}

func TouchAt(points ...Point) PointerEvent {
	return PointerEvent{Touches: points}
}

func (ev PointerEvent) position() Point {
	if len(ev.Touches) > 0 {
		return ev.Touches[0]
	}
	return Point{X: ev.ClientX, Y: ev.ClientY}
}

// Mapped is a pointer position in logical units together with its region.
type Mapped struct {
	Point
	Region Region
}

// Mapper converts raw pointer positions into logical canvas coordinates.
type Mapper struct {
	Surface  Surface
	Viewport Viewport
}

func (m *Mapper) Map(ev PointerEvent) (Mapped, bool) {
	if m == nil || m.Surface == nil {
		return Mapped{}, false
	}
	b, ok := m.Surface.Bounds()
	if !ok || b.Width <= 0 || b.Height <= 0 {
		return Mapped{}, false
	}

	raw := ev.position()
	p := Point{
		X: (raw.X - b.X) * m.Viewport.Width / b.Width,
		Y: (raw.Y - b.Y) * m.Viewport.Height / b.Height,
	}
	return Mapped{Point: p, Region: RegionAt(p.X, m.Viewport.Width)}, true
}

// ToScreen is the inverse of Map, used by renderers.
func (m *Mapper) ToScreen(p Point) (Point, bool) {
	if m == nil || m.Surface == nil {
		return Point{}, false
	}
	b, ok := m.Surface.Bounds()
	if !ok || m.Viewport.Width <= 0 || m.Viewport.Height <= 0 {
		return Point{}, false
	}
	return Point{
		X: b.X + p.X*b.Width/m.Viewport.Width,
		Y: b.Y + p.Y*b.Height/m.Viewport.Height,
	}, true
}
