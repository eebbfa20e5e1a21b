package export

import (
	"fmt"
	"log"

	"LashMap/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 15.0 // mm
	mmPerPt    = 25.4 / 72
)

// PDF writes s onto a landscape A4 page, both eyes side by side.
func PDF(path string, s state.Snapshot, vp state.Viewport) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("LashMap", true)
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	header := 10.0
	scale := fit(vp, pageW-2*pageMargin, pageH-2*pageMargin-header)
	ox := (pageW - vp.Width*scale) / 2
	oy := pageMargin + header
	at := func(pt state.Point) (float64, float64) {
		return ox + pt.X*scale, oy + pt.Y*scale
	}

	p.SetFont("Helvetica", "B", 14)
	p.Text(pageMargin, pageMargin+5, "LashMap")
	if u := s.Metadata.Updated; u != nil {
		p.SetFont("Helvetica", "", 9)
		p.Text(pageMargin+30, pageMargin+5, "updated "+u.Format("2006-01-02 15:04 MST"))
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	// Frame and divider.
	p.SetDrawColor(220, 220, 220)
	p.SetLineWidth(0.2)
	p.Rect(ox, oy, vp.Width*scale, vp.Height*scale, "D")
	x, y1 := at(state.Point{X: vp.Width / 2})
	_, y2 := at(state.Point{X: vp.Width / 2, Y: vp.Height})
	p.Line(x, y1, x, y2)

	p.SetDrawColor(150, 150, 160)
	p.SetLineWidth(0.4)
	for _, r := range state.Regions {
		pdfPolyline(p, state.EyeOutline(r, vp), at)
	}

	for _, r := range state.Regions {
		for _, path := range s.Paths(r) {
			c := state.ParseColor(path.Color)
			p.SetDrawColor(int(c.R), int(c.G), int(c.B))
			p.SetLineWidth(path.StrokeWidth * scale)
			pdfPolyline(p, path.Points, at)
		}
	}

	fontPt := state.LabelFontSize * scale / mmPerPt
	p.SetFont("Helvetica", "B", fontPt)
	p.SetTextColor(0, 0, 0)
	for _, r := range state.Regions {
		for _, lbl := range s.Labels(r) {
			cx, cy := at(state.Point{X: lbl.X, Y: lbl.Y})
			w := p.GetStringWidth(lbl.Text())
			p.Text(cx-w/2, cy+fontPt*mmPerPt/3, lbl.Text())
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %s", path)
	return nil
}

func pdfPolyline(p *gofpdf.Fpdf, points []state.Point, at func(state.Point) (float64, float64)) {
	for i := 1; i < len(points); i++ {
		x1, y1 := at(points[i-1])
		x2, y2 := at(points[i])
		p.Line(x1, y1, x2, y2)
	}
}

// fit returns the largest scale at which vp fits inside w x h.
func fit(vp state.Viewport, w, h float64) float64 {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 1
	}
	return min(w/vp.Width, h/vp.Height)
}
