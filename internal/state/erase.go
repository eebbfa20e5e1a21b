package state

// eraseAt removes the topmost label or path under the pointer in its region.
// Labels render above paths and are tested first.
func (e *Editor) eraseAt(m Mapped) bool {
	labels := e.board.Labels(m.Region)
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i].Box().Contains(m.Point) {
			return e.board.removeLabel(labels[i].ID)
		}
	}

	paths := e.board.Paths(m.Region)
	for i := len(paths) - 1; i >= 0; i-- {
		if paths[i].Hit(m.Point) {
			return e.board.removePathAt(m.Region, i)
		}
	}
	return false
}
