package state

// stroke is a freehand gesture in flight. The region is locked at press time.
type stroke struct {
	region Region
	path   Path
}

func (e *Editor) beginStroke(m Mapped) {
	e.stroke = &stroke{
		region: m.Region,
		path: Path{
			ID:          newID(),
			Region:      m.Region,
			Points:      []Point{m.Point},
			Color:       e.color,
			StrokeWidth: e.strokeWidth,
			Kind:        KindDrawn,
		},
	}
}

// extendStroke records a sample unless it crosses into the other region or
// lies within MinPointDistance of the previous sample.
func (e *Editor) extendStroke(m Mapped) bool {
	s := e.stroke
	if m.Region != s.region {
		return false
	}
	last := s.path.Points[len(s.path.Points)-1]
	if Distance(last, m.Point) <= MinPointDistance {
		return false
	}
	s.path.Points = append(s.path.Points, m.Point)
	return true
}

// finishStroke keeps only the first and last sample, so a drawn path is
// always a straight segment. A single-sample stroke is stored as is.
func (e *Editor) finishStroke() {
	p := e.stroke.path
	if n := len(p.Points); n >= 2 {
		p.Points = []Point{p.Points[0], p.Points[n-1]}
	}
	e.board.addPath(p)
	e.stroke = nil
}
