package export

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"LashMap/internal/state"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Render rasterizes s at scale pixels per logical unit.
func Render(s state.Snapshot, vp state.Viewport, scale float64) (image.Image, error) {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(vp.Width*scale), int(vp.Height*scale))
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	at := func(pt state.Point) (float64, float64) {
		return pt.X * scale, pt.Y * scale
	}

	dc.SetColor(color.NRGBA{R: 220, G: 220, B: 220, A: 255})
	dc.SetLineWidth(1)
	dc.DrawLine(vp.Width*scale/2, 0, vp.Width*scale/2, vp.Height*scale)
	dc.Stroke()

	dc.SetColor(color.NRGBA{R: 150, G: 150, B: 160, A: 255})
	dc.SetLineWidth(1.5 * scale)
	for _, r := range state.Regions {
		pngPolyline(dc, state.EyeOutline(r, vp), at)
	}

	for _, r := range state.Regions {
		for _, p := range s.Paths(r) {
			dc.SetColor(state.ParseColor(p.Color))
			dc.SetLineWidth(p.StrokeWidth * scale)
			pngPolyline(dc, p.Points, at)
		}
	}

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    state.LabelFontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	for _, r := range state.Regions {
		for _, lbl := range s.Labels(r) {
			x, y := at(state.Point{X: lbl.X, Y: lbl.Y})
			dc.DrawStringAnchored(lbl.Text(), x, y, 0.5, 0.35)
		}
	}
	return dc.Image(), nil
}

// PNG writes s as an image at scale pixels per logical unit.
func PNG(path string, s state.Snapshot, vp state.Viewport, scale float64) error {
	img, err := Render(s, vp, scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("export png %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %s", path)
	return nil
}

func pngPolyline(dc *gg.Context, points []state.Point, at func(state.Point) (float64, float64)) {
	if len(points) < 2 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(at(points[0]))
	for _, pt := range points[1:] {
		dc.LineTo(at(pt))
	}
	dc.Stroke()
}
