package state

// labelDrag binds a drag to one label; the region never changes mid-drag.
type labelDrag struct {
	labelID string
	region  Region
}

// AddLabel places a label of the given length at the centre of each region
// and returns the new ids. Lengths outside 8–18mm are ignored.
func (e *Editor) AddLabel(length int) []string {
	var ids []string
	e.mutate(func() bool {
		if !ValidLength(length) {
			return false
		}
		for _, r := range Regions {
			ids = append(ids, e.addLabel(r, length))
		}
		return true
	})
	return ids
}

// AddLabelTo places a single label at the centre of one region.
func (e *Editor) AddLabelTo(r Region, length int) (string, bool) {
	var id string
	ok := e.mutate(func() bool {
		if !r.Valid() || !ValidLength(length) {
			return false
		}
		id = e.addLabel(r, length)
		return true
	})
	return id, ok
}

func (e *Editor) addLabel(r Region, length int) string {
	c := RegionArea(r, e.mapper.Viewport).Center()
	lbl := LengthLabel{
		ID:     newID(),
		Region: r,
		Length: length,
		X:      c.X,
		Y:      c.Y,
	}
	e.board.addLabel(lbl)
	return lbl.ID
}

// RemoveLabel deletes a label by id from whichever region holds it.
func (e *Editor) RemoveLabel(id string) bool {
	return e.mutate(func() bool {
		if e.drag != nil && e.drag.labelID == id {
			e.drag = nil
		}
		return e.board.removeLabel(id)
	})
}

func (e *Editor) grabLabel(m Mapped) {
	labels := e.board.Labels(m.Region)
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i].Box().Contains(m.Point) {
			e.drag = &labelDrag{labelID: labels[i].ID, region: m.Region}
			return
		}
	}
}

func (e *Editor) dragLabel(m Mapped) bool {
	d := e.drag
	if m.Region != d.region {
		return false
	}
	lbl := e.board.label(d.region, d.labelID)
	if lbl == nil {
		return false
	}
	lbl.X, lbl.Y = m.X, m.Y
	return true
}
