package state

import "math"

const outlineSegments = 24

// EyeOutline returns the closed almond outline drawn behind a region, in
// logical units. Renderers and exporters share it so every output matches.
func EyeOutline(r Region, vp Viewport) []Point {
	area := RegionArea(r, vp)
	c := area.Center()
	a := area.Width * 0.4
	upper := area.Height * 0.3
	lower := area.Height * 0.18

	points := make([]Point, 0, 2*outlineSegments+1)
	for i := 0; i <= outlineSegments; i++ {
		t := float64(i) / outlineSegments
		points = append(points, Point{X: c.X - a + 2*a*t, Y: c.Y - upper*math.Sin(math.Pi*t)})
	}
	for i := outlineSegments - 1; i >= 0; i-- {
		t := float64(i) / outlineSegments
		points = append(points, Point{X: c.X - a + 2*a*t, Y: c.Y + lower*math.Sin(math.Pi*t)})
	}
	return points
}
