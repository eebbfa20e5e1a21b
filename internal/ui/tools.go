package ui

import (
	"fmt"
	"image/color"
	"log"

	"LashMap/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Actions are the toolbar entries that need collaborators outside the editor.
type Actions struct {
	Save       func()
	CopyJSON   func()
	PasteJSON  func()
	ExportPDF  func()
	ExportPNG  func()
	ShareLink  string
	ShowStatus func(string)
}

func lengthOptions() []string {
	opts := make([]string, 0, state.MaxLabelLength-state.MinLabelLength+1)
	for l := state.MinLabelLength; l <= state.MaxLabelLength; l++ {
		opts = append(opts, fmt.Sprintf("%dmm", l))
	}
	return opts
}

// Toolbar holds the controls that drive a BoardWidget.
type Toolbar struct {
	board *BoardWidget
	modes *widget.RadioGroup
	box   fyne.CanvasObject
}

func (t *Toolbar) Object() fyne.CanvasObject {
	return t.box
}

// SyncMode puts the mode selector back in line with the editor, e.g. after a
// switch was refused mid-gesture.
func (t *Toolbar) SyncMode() {
	want := t.board.editor.Mode().String()
	if t.modes.Selected != want {
		t.modes.SetSelected(want)
	}
}

func NewToolbar(board *BoardWidget, actions Actions) *Toolbar {
	ed := board.editor
	t := &Toolbar{board: board}

	// --- Mode selector ---
	names := make([]string, 0, len(state.Modes))
	for _, m := range state.Modes {
		names = append(names, m.String())
	}
	t.modes = widget.NewRadioGroup(names, nil)
	t.modes.Horizontal = true
	t.modes.Required = true
	t.modes.SetSelected(ed.Mode().String())
	t.modes.OnChanged = func(s string) {
		m, err := state.ParseMode(s)
		if err != nil || !ed.SetMode(m) {
			t.SyncMode()
			return
		}
		board.Refresh()
	}

	// --- Template picker ---
	templates := state.Templates()
	templateNames := make([]string, 0, len(templates))
	for _, tpl := range templates {
		templateNames = append(templateNames, tpl.Name)
	}
	templatePicker := widget.NewSelect(templateNames, func(name string) {
		for _, tpl := range templates {
			if tpl.Name == name {
				ed.SelectTemplate(tpl.ID)
				return
			}
		}
	})
	templatePicker.SetSelectedIndex(0)

	// --- Labels ---
	lengthPicker := widget.NewSelect(lengthOptions(), nil)
	lengthPicker.SetSelected("12mm")
	addLabel := widget.NewButtonWithIcon("Label", theme.ContentAddIcon(), func() {
		length := state.MinLabelLength + lengthPicker.SelectedIndex()
		if len(ed.AddLabel(length)) == 0 {
			log.Printf("[UI] No label added for %q", lengthPicker.Selected)
			if actions.ShowStatus != nil {
				actions.ShowStatus("Pick a length between 8mm and 18mm")
			}
		}
		board.changed()
	})

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		ed.SetColor(state.ColorName(c))
	}
	colorBox := container.NewHBox()
	for _, name := range state.PaletteOrder {
		colorBox.Add(newColorSwatch(state.Palette[name], onColorTapped))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 8.0)
	strokeSlider.SetValue(2.0)
	strokeSlider.OnChanged = func(val float64) {
		ed.SetStrokeWidth(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	// --- Edit actions ---
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			ed.Undo()
			board.changed()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			ed.ClearAll()
			board.changed()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), call(actions.Save)),
		widget.NewToolbarAction(theme.ContentCopyIcon(), call(actions.CopyJSON)),
		widget.NewToolbarAction(theme.ContentPasteIcon(), func() {
			call(actions.PasteJSON)()
			board.changed()
		}),
		widget.NewToolbarAction(theme.FileApplicationIcon(), call(actions.ExportPDF)),
		widget.NewToolbarAction(theme.FileImageIcon(), call(actions.ExportPNG)),
	)
	clearLeft := widget.NewButton("Clear L", func() {
		ed.ClearRegion(state.RegionLeft)
		board.changed()
	})
	clearRight := widget.NewButton("Clear R", func() {
		ed.ClearRegion(state.RegionRight)
		board.changed()
	})

	row1 := container.NewHBox(
		widget.NewLabel("Mode:"), t.modes,
		layout.NewSpacer(),
		tb,
	)
	row2 := container.NewHBox(
		widget.NewLabel("Template:"), templatePicker,
		widget.NewSeparator(),
		lengthPicker, addLabel,
		widget.NewSeparator(),
		widget.NewLabel("Color:"), colorBox,
		widget.NewLabel("Size:"), sliderContainer,
		layout.NewSpacer(),
		clearLeft, clearRight,
	)
	if actions.ShareLink != "" {
		link := widget.NewLabel(actions.ShareLink)
		link.TextStyle = fyne.TextStyle{Monospace: true}
		row2.Add(link)
	}
	t.box = container.NewVBox(row1, row2)
	return t
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
