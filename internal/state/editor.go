package state

import (
	"log"
	"sync"
	"time"
)

// Options configures an Editor.
type Options struct {
	InitialData        *Snapshot
	ReadOnly           bool
	BackgroundImageRef string
	OnSave             SaveFunc
	Surface            Surface
	Viewport           Viewport
	Color              string
	StrokeWidth        float64
	Debounce           time.Duration
	Now                Clock
}

// Editor is the annotation surface state: the board, the active mode and the
// gesture in flight. All methods are safe to call from any goroutine; pointer
// input is expected to arrive from one stream at a time.
type Editor struct {
	mu          sync.Mutex
	board       *Board
	mapper      *Mapper
	bridge      *Bridge
	clock       Clock
	mode        Mode
	readOnly    bool
	color       string
	strokeWidth float64
	selected    *Template
	initial     *Snapshot

	stroke   *stroke
	rotation *rotation
	drag     *labelDrag
}

func NewEditor(opts Options) *Editor {
	vp := opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DefaultViewport
	}
	color := opts.Color
	if color == "" {
		color = "black"
	}
	width := opts.StrokeWidth
	if width <= 0 {
		width = 2
	}

	e := &Editor{
		board:       NewBoard(),
		mapper:      &Mapper{Surface: opts.Surface, Viewport: vp},
		bridge:      NewBridge(opts.OnSave, opts.Debounce),
		clock:       opts.Now,
		mode:        ModeTemplate,
		readOnly:    opts.ReadOnly,
		color:       color,
		strokeWidth: width,
	}
	if opts.InitialData != nil {
		e.initial = opts.InitialData
		e.board.Load(*opts.InitialData)
	}
	if opts.BackgroundImageRef != "" {
		e.board.background = opts.BackgroundImageRef
	}
	return e
}

// Close cancels pending emissions and stops the save worker.
func (e *Editor) Close() {
	e.bridge.Close()
}

// Flush waits until every emitted snapshot has reached the save collaborator.
func (e *Editor) Flush() {
	e.bridge.Flush()
}

func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Snapshot()
}

func (e *Editor) Viewport() Viewport {
	return e.mapper.Viewport
}

// AttachSurface sets the surface pointer events are mapped against. Widgets
// that own the editor call this once they exist.
func (e *Editor) AttachSurface(s Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mapper.Surface = s
}

func (e *Editor) ReadOnly() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readOnly
}

func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetMode switches the live gesture handler. A switch requested while a
// gesture is in flight is ignored until that gesture is released.
func (e *Editor) SetMode(m Mode) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !m.Valid() {
		return false
	}
	if e.active() {
		log.Printf("[EDITOR] Ignoring switch to %s while a gesture is in flight", m)
		return false
	}
	e.mode = m
	return true
}

// SelectTemplate chooses the catalog entry placed by template mode.
func (e *Editor) SelectTemplate(id string) bool {
	t, ok := LookupTemplate(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = &t
	return true
}

func (e *Editor) SelectedTemplate() (Template, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return Template{}, false
	}
	return e.selected.clone(), true
}

func (e *Editor) SetColor(color string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if color != "" {
		e.color = color
	}
}

func (e *Editor) SetStrokeWidth(w float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if w > 0 {
		e.strokeWidth = w
	}
}

// Preview returns the freehand stroke being drawn, if any.
func (e *Editor) Preview() (Path, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stroke == nil {
		return Path{}, false
	}
	return e.stroke.path.clone(), true
}

// SetInitialData hydrates the editor when s is a different record from the
// one last supplied. The model is replaced, never merged.
func (e *Editor) SetInitialData(s *Snapshot) bool {
	e.mu.Lock()
	if s == nil || s == e.initial {
		e.mu.Unlock()
		return false
	}
	e.initial = s
	e.mu.Unlock()
	e.Hydrate(*s)
	return true
}

// Hydrate replaces the model with s, dropping any gesture in flight.
func (e *Editor) Hydrate(s Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.abort()
	background := e.board.background
	e.board.Load(s)
	if e.board.background == "" {
		e.board.background = background
	}
}

func (e *Editor) active() bool {
	return e.stroke != nil || e.rotation != nil || e.drag != nil
}

func (e *Editor) abort() {
	if e.rotation != nil {
		e.bridge.Cancel()
	}
	e.stroke = nil
	e.rotation = nil
	e.drag = nil
}

// commit stamps the board and returns the snapshot to emit. Callers hold e.mu.
func (e *Editor) commit() Snapshot {
	e.board.touch(e.clock.now())
	return e.board.Snapshot()
}

// mutate runs fn under the lock and emits a snapshot once the change has
// committed and the lock is released.
func (e *Editor) mutate(fn func() bool) bool {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		return false
	}
	changed := fn()
	var snap Snapshot
	if changed {
		snap = e.commit()
	}
	e.mu.Unlock()

	if changed {
		e.bridge.Emit(snap)
	}
	return changed
}

// Press starts a gesture for the active mode.
func (e *Editor) Press(ev PointerEvent) {
	e.mutate(func() bool {
		if e.active() {
			return false
		}
		m, ok := e.mapper.Map(ev)
		if !ok {
			return false
		}
		switch e.mode {
		case ModeDraw:
			e.beginStroke(m)
		case ModeTemplate:
			return e.placeTemplate(m)
		case ModeRotate:
			e.grabHandle(m)
		case ModeLabel:
			e.grabLabel(m)
		case ModeErase:
			return e.eraseAt(m)
		}
		return false
	})
}

// Move feeds a pointer move to the gesture in flight.
func (e *Editor) Move(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly || !e.active() {
		return
	}
	m, ok := e.mapper.Map(ev)
	if !ok {
		return
	}

	switch {
	case e.stroke != nil:
		e.extendStroke(m)
	case e.rotation != nil:
		if e.rotateTo(m) {
			e.board.touch(e.clock.now())
			e.bridge.Schedule(e.Snapshot)
		}
	case e.drag != nil:
		if e.dragLabel(m) {
			e.board.touch(e.clock.now())
		}
	}
}

// Release finishes the gesture in flight and emits the settled state.
func (e *Editor) Release() {
	e.mutate(func() bool {
		switch {
		case e.stroke != nil:
			e.finishStroke()
			return true
		case e.rotation != nil:
			e.bridge.Cancel()
			e.rotation = nil
			return true
		case e.drag != nil:
			e.drag = nil
			return true
		}
		return false
	})
}

// Leave handles a pointer leaving the surface or a cancelled touch. An
// abandoned press is released rather than left dangling.
func (e *Editor) Leave() {
	e.Release()
}
