package state

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// MinPointDistance is the spacing below which freehand samples are dropped.
	MinPointDistance = 2.0
	// HandleRadius is the grab radius of a template's rotation handle.
	HandleRadius = 12.0
	// EraseTolerance widens a stroke for erase hit-testing.
	EraseTolerance = 6.0
	// LabelFontSize is the glyph height used to hit-test labels.
	LabelFontSize = 14.0
)

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a.vec(), b.vec()))
}

// angleOf returns the direction from a to b in degrees.
func angleOf(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// normalizeAngle folds degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// rotateAround rotates every point except the first around anchor.
func rotateAround(points []Point, anchor Point, degrees float64) []Point {
	rot := r2.NewRotation(degrees*math.Pi/180, anchor.vec())
	out := make([]Point, len(points))
	for i, p := range points {
		if i == 0 {
			out[i] = p
			continue
		}
		out[i] = fromVec(rot.Rotate(p.vec()))
	}
	return out
}

// segmentDistance is the distance from p to the segment ab.
func segmentDistance(p, a, b Point) float64 {
	ab := r2.Sub(b.vec(), a.vec())
	ap := r2.Sub(p.vec(), a.vec())
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(ap)
	}
	t := math.Max(0, math.Min(1, r2.Dot(ap, ab)/l2))
	proj := r2.Add(a.vec(), r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p.vec(), proj))
}

// Hit reports whether pt touches the rendered stroke, not its bounding box.
func (p Path) Hit(pt Point) bool {
	if len(p.Points) == 0 {
		return false
	}
	reach := p.StrokeWidth/2 + EraseTolerance
	if !boundsOf(p.Points).Grow(reach).Contains(pt) {
		return false
	}
	if len(p.Points) == 1 {
		return Distance(pt, p.Points[0]) <= reach
	}
	for i := 1; i < len(p.Points); i++ {
		if segmentDistance(pt, p.Points[i-1], p.Points[i]) <= reach {
			return true
		}
	}
	return false
}

// HandleHit reports whether pt grabs the rotation handle on the terminal point.
func (p Path) HandleHit(pt Point) bool {
	if p.Kind != KindTemplate || len(p.Points) < 2 {
		return false
	}
	return Distance(pt, p.End()) <= HandleRadius
}

// Box is the rendered glyph box of the label text, centred on the label position.
func (l LengthLabel) Box() Area {
	w := float64(len(l.Text())) * LabelFontSize * 0.6
	h := LabelFontSize
	return Area{X: l.X - w/2, Y: l.Y - h/2, Width: w, Height: h}
}
