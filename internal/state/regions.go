package state

// Viewport is the logical size of the annotation surface. All stored
// coordinates are in these units regardless of the on-screen size.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var DefaultViewport = Viewport{Width: 800, Height: 400}

// Area is an axis-aligned rectangle in logical units.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

func (a Area) Center() Point {
	return Point{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Grow returns the area padded by d on every side.
func (a Area) Grow(d float64) Area {
	return Area{X: a.X - d, Y: a.Y - d, Width: a.Width + 2*d, Height: a.Height + 2*d}
}

// RegionAt classifies an x coordinate. This is the only place the split
// between the two halves is decided.
func RegionAt(x, width float64) Region {
	if x < width/2 {
		return RegionLeft
	}
	return RegionRight
}

// RegionArea returns the half of the viewport owned by r.
func RegionArea(r Region, vp Viewport) Area {
	half := vp.Width / 2
	if r == RegionRight {
		return Area{X: half, Y: 0, Width: half, Height: vp.Height}
	}
	return Area{X: 0, Y: 0, Width: half, Height: vp.Height}
}

// boundsOf returns the bounding box of a set of points.
func boundsOf(points []Point) Area {
	if len(points) == 0 {
		return Area{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
