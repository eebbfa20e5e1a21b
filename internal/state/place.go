package state

// placeTemplate drops a copy of the selected template anchored at the pointer.
func (e *Editor) placeTemplate(m Mapped) bool {
	if e.selected == nil {
		return false
	}
	e.board.addPath(Path{
		ID:          newID(),
		Region:      m.Region,
		Points:      e.selected.Place(m.Point),
		Color:       e.color,
		StrokeWidth: e.strokeWidth,
		Kind:        KindTemplate,
		TemplateID:  e.selected.ID,
	})
	return true
}
