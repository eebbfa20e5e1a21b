package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the named stroke colors.
var Palette = map[string]color.NRGBA{
	"black": {A: 255},
	"red":   {R: 255, A: 255},
	"green": {G: 160, A: 255},
	"blue":  {B: 255, A: 255},
	"brown": {R: 110, G: 60, B: 20, A: 255},
}

// PaletteOrder is the order swatches are offered in.
var PaletteOrder = []string{"black", "brown", "red", "green", "blue"}

// ParseColor accepts a palette name or #rrggbb. Anything else is black.
func ParseColor(s string) color.NRGBA {
	if c, ok := Palette[strings.ToLower(s)]; ok {
		return c
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		}
	}
	return color.NRGBA{A: 255}
}

// ColorName is the inverse of ParseColor.
func ColorName(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, name := range PaletteOrder {
		if Palette[name] == n {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
