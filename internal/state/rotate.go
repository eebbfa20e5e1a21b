package state

// rotation is a handle drag in flight. baseAngle is the direction the path
// would point if it had never been rotated.
type rotation struct {
	pathIndex int
	pathID    string
	region    Region
	baseAngle float64
	grab      Point
}

// grabHandle binds a rotation to the topmost template path whose terminal
// handle is under the pointer.
func (e *Editor) grabHandle(m Mapped) {
	paths := e.board.Paths(m.Region)
	for i := len(paths) - 1; i >= 0; i-- {
		p := paths[i]
		if !p.HandleHit(m.Point) {
			continue
		}
		e.rotation = &rotation{
			pathIndex: i,
			pathID:    p.ID,
			region:    m.Region,
			baseAngle: angleOf(p.Start(), p.End()) - p.Rotation(),
			grab:      m.Point,
		}
		return
	}
}

// rotateTo re-derives the path from its template offsets, rotated by the
// angle between the pointer and the grab baseline. Nothing is applied
// incrementally.
func (e *Editor) rotateTo(m Mapped) bool {
	r := e.rotation
	if m.Region != r.region {
		return false
	}
	paths := e.board.Paths(r.region)
	if r.pathIndex >= len(paths) || paths[r.pathIndex].ID != r.pathID {
		// the path went away underneath the gesture
		e.rotation = nil
		e.bridge.Cancel()
		return false
	}
	p := &paths[r.pathIndex]
	tpl, ok := LookupTemplate(p.TemplateID)
	if !ok || len(tpl.Points) != len(p.Points) {
		return false
	}

	total := normalizeAngle(angleOf(p.Start(), m.Point) - r.baseAngle)
	p.Points = tpl.Rotated(p.Start(), total)
	p.RotationAngle = &total
	return true
}
