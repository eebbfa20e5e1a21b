package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, ParseColor("red"))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, ParseColor("RED"))
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, ParseColor("#123456"))
	assert.Equal(t, color.NRGBA{A: 255}, ParseColor("#12345"))
	assert.Equal(t, color.NRGBA{A: 255}, ParseColor("chartreuse-ish"))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "brown", ColorName(Palette["brown"]))
	assert.Equal(t, "#123456", ColorName(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}))
}
