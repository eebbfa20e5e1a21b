package state

import "fmt"

// Mode selects which gesture handler receives pointer events.
type Mode int

const (
	ModeTemplate Mode = iota // initial mode
	ModeLabel
	ModeDraw
	ModeRotate
	ModeErase
)

// Modes lists every mode in toolbar order.
var Modes = []Mode{ModeTemplate, ModeLabel, ModeDraw, ModeRotate, ModeErase}

func (m Mode) String() string {
	switch m {
	case ModeTemplate:
		return "template"
	case ModeLabel:
		return "label"
	case ModeDraw:
		return "draw"
	case ModeRotate:
		return "rotate"
	case ModeErase:
		return "erase"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) Valid() bool {
	return m >= ModeTemplate && m <= ModeErase
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
