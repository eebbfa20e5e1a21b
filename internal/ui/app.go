package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Window bundles what the entry points need to wire a running board.
type Window struct {
	App    fyne.App
	Window fyne.Window
	Board  *BoardWidget
	status *widget.Label
}

// SetStatus updates the status line. Safe from any goroutine.
func (w *Window) SetStatus(msg string) {
	fyne.Do(func() { w.status.SetText(msg) })
}

// NewWindow lays out the board with its toolbar. A read-only board gets no
// toolbar. build is handed the window so it can attach dialogs to it.
func NewWindow(title string, board *BoardWidget, build func(*Window) Actions) *Window {
	a := app.NewWithID("com.lashmap.editor")
	w := &Window{
		App:    a,
		Window: a.NewWindow(title),
		Board:  board,
		status: widget.NewLabel(""),
	}
	w.Window.Resize(fyne.NewSize(1024, 640))

	var top fyne.CanvasObject
	if !board.Editor().ReadOnly() {
		var actions Actions
		if build != nil {
			actions = build(w)
		}
		if actions.ShowStatus == nil {
			actions.ShowStatus = w.SetStatus
		}
		toolbar := NewToolbar(board, actions)
		board.OnChanged = toolbar.SyncMode
		top = toolbar.Object()
	}

	content := container.NewBorder(top, w.status, nil, nil, board)
	w.Window.SetContent(content)
	return w
}

// Run shows the window and blocks until it is closed.
func (w *Window) Run() {
	w.Window.ShowAndRun()
}

// ExportDialog asks for a destination and hands its path to write.
func (w *Window) ExportDialog(dir, name string, write func(path string) error) {
	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.Window)
			return
		}
		if uc == nil {
			return
		}
		path := uc.URI().Path()
		uc.Close()
		if err := write(path); err != nil {
			dialog.ShowError(err, w.Window)
			return
		}
		w.SetStatus("Exported " + path)
	}, w.Window)
	d.SetFileName(name)
	if dir != "" {
		if l, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(l)
		}
	}
	d.Show()
}

// Report shows err in a dialog, or msg on the status line when err is nil.
func (w *Window) Report(msg string, err error) {
	if err != nil {
		dialog.ShowError(err, w.Window)
		return
	}
	w.SetStatus(msg)
}
