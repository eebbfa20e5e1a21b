package state

// Template is a named stroke shape given as offsets from an anchor at (0,0).
// Catalog entries are never mutated; placements copy their points.
type Template struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

var catalog = []Template{
	{ID: "short", Name: "Short line", Points: []Point{{0, 0}, {0, 80}}},
	{ID: "medium", Name: "Medium line", Points: []Point{{0, 0}, {0, 140}}},
	{ID: "long", Name: "Long line", Points: []Point{{0, 0}, {0, 200}}},
	{ID: "diagonal-left", Name: "Diagonal left", Points: []Point{{0, 0}, {-60, 103.923}}},
	{ID: "diagonal-right", Name: "Diagonal right", Points: []Point{{0, 0}, {60, 103.923}}},
	{ID: "curve-left", Name: "Curve left", Points: []Point{{0, 0}, {-10, 30}, {-14, 60}, {-10, 90}, {0, 120}}},
	{ID: "curve-right", Name: "Curve right", Points: []Point{{0, 0}, {10, 30}, {14, 60}, {10, 90}, {0, 120}}},
}

func (t Template) clone() Template {
	t.Points = append([]Point(nil), t.Points...)
	return t
}

// Templates returns a copy of the catalog in display order.
func Templates() []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t.clone())
	}
	return out
}

func LookupTemplate(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Template{}, false
}

// Place translates the template offsets to the anchor.
func (t Template) Place(anchor Point) []Point {
	points := make([]Point, len(t.Points))
	for i, off := range t.Points {
		points[i] = Point{X: anchor.X + off.X, Y: anchor.Y + off.Y}
	}
	return points
}

// Rotated places the template at anchor and rotates it by degrees around the
// anchor, always starting from the catalog offsets.
func (t Template) Rotated(anchor Point, degrees float64) []Point {
	return rotateAround(t.Place(anchor), anchor, degrees)
}
