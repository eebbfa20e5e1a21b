package state

import (
	"sync"
	"testing"
	"time"
)

var testTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testTime }

type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) save(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *recorder) last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return Snapshot{}
	}
	return r.snaps[len(r.snaps)-1]
}

// newTestEditor returns an editor on an 800x400 surface whose screen and
// logical coordinates coincide.
func newTestEditor(t *testing.T, tweak ...func(*Options)) (*Editor, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := Options{
		Surface:  FixedSurface{Width: 800, Height: 400},
		Viewport: Viewport{Width: 800, Height: 400},
		OnSave:   rec.save,
		Now:      fixedClock,
		Debounce: time.Hour,
	}
	for _, fn := range tweak {
		fn(&opts)
	}
	e := NewEditor(opts)
	t.Cleanup(e.Close)
	return e, rec
}

func press(e *Editor, x, y float64) { e.Press(MouseAt(x, y)) }
func move(e *Editor, x, y float64)  { e.Move(MouseAt(x, y)) }

func tap(e *Editor, x, y float64) {
	e.Press(MouseAt(x, y))
	e.Release()
}
