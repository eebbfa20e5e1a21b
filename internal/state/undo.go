package state

import "log"

// Undo removes the last element of the first non-empty collection, checked in
// the order right labels, right paths, left labels, left paths. It is not a
// chronological undo across regions.
func (e *Editor) Undo() bool {
	return e.mutate(func() bool {
		right, left := e.board.layer(RegionRight), e.board.layer(RegionLeft)
		switch {
		case len(right.labels) > 0:
			right.labels = right.labels[:len(right.labels)-1]
		case len(right.paths) > 0:
			right.paths = right.paths[:len(right.paths)-1]
		case len(left.labels) > 0:
			left.labels = left.labels[:len(left.labels)-1]
		case len(left.paths) > 0:
			left.paths = left.paths[:len(left.paths)-1]
		default:
			return false
		}
		return true
	})
}

// ClearRegion empties one region. It does not emit; callers save explicitly.
// A freehand stroke in flight on that region is abandoned.
func (e *Editor) ClearRegion(r Region) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly || !r.Valid() {
		return
	}
	if e.stroke != nil && e.stroke.region == r {
		e.stroke = nil
	}
	if e.rotation != nil && e.rotation.region == r {
		e.bridge.Cancel()
		e.rotation = nil
	}
	if e.drag != nil && e.drag.region == r {
		e.drag = nil
	}
	e.board.clearRegion(r)
	e.board.touch(e.clock.now())
	log.Printf("[EDITOR] Cleared %s region", r)
}

// ClearAll empties both regions and emits immediately.
func (e *Editor) ClearAll() {
	e.mutate(func() bool {
		e.abort()
		e.board.clearAll()
		return true
	})
}

// Save emits the current state, e.g. after ClearRegion.
func (e *Editor) Save() {
	e.mu.Lock()
	snap := e.board.Snapshot()
	e.mu.Unlock()
	e.bridge.Emit(snap)
}
