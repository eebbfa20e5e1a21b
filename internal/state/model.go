package state

import (
	"fmt"
	"time"
)

// Region is one half of the canvas. Each region owns its own paths and labels.
type Region string

const (
	RegionLeft  Region = "left"
	RegionRight Region = "right"
)

// Regions lists both regions in rendering order.
var Regions = []Region{RegionLeft, RegionRight}

func (r Region) Valid() bool {
	return r == RegionLeft || r == RegionRight
}

// Point is a position in logical canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PathKind string

const (
	KindDrawn    PathKind = "drawn"
	KindTemplate PathKind = "template"
)

// Path is a stroke on one region. Drawn paths are always simplified to their
// first and last sample; template paths carry the catalog entry they came from.
type Path struct {
	ID            string   `json:"id"`
	Region        Region   `json:"region"`
	Points        []Point  `json:"points"`
	Color         string   `json:"color"`
	StrokeWidth   float64  `json:"strokeWidth"`
	Kind          PathKind `json:"kind"`
	TemplateID    string   `json:"templateId,omitempty"`
	RotationAngle *float64 `json:"rotationAngle,omitempty"` // degrees since placement
}

func (p Path) Start() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	return p.Points[0]
}

func (p Path) End() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	return p.Points[len(p.Points)-1]
}

// Rotation returns the cumulative rotation, 0 when the path was never rotated.
func (p Path) Rotation() float64 {
	if p.RotationAngle == nil {
		return 0
	}
	return *p.RotationAngle
}

func (p Path) clone() Path {
	c := p
	c.Points = append([]Point(nil), p.Points...)
	if p.RotationAngle != nil {
		angle := *p.RotationAngle
		c.RotationAngle = &angle
	}
	return c
}

const (
	MinLabelLength = 8
	MaxLabelLength = 18
)

// LengthLabel is a draggable lash length annotation, in millimeters.
type LengthLabel struct {
	ID     string  `json:"id"`
	Region Region  `json:"region"`
	Length int     `json:"length"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (l LengthLabel) Text() string {
	return fmt.Sprintf("%dmm", l.Length)
}

func ValidLength(length int) bool {
	return length >= MinLabelLength && length <= MaxLabelLength
}

type Metadata struct {
	Created *time.Time `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// Snapshot is the full serializable state of both regions. It is the only
// representation handed to the save collaborator.
type Snapshot struct {
	LeftPaths          []Path        `json:"leftPaths"`
	RightPaths         []Path        `json:"rightPaths"`
	LeftLabels         []LengthLabel `json:"leftLabels"`
	RightLabels        []LengthLabel `json:"rightLabels"`
	BackgroundImageRef string        `json:"backgroundImageRef,omitempty"`
	Metadata           Metadata      `json:"metadata"`
}

func (s Snapshot) Paths(r Region) []Path {
	if r == RegionRight {
		return s.RightPaths
	}
	return s.LeftPaths
}

func (s Snapshot) Labels(r Region) []LengthLabel {
	if r == RegionRight {
		return s.RightLabels
	}
	return s.LeftLabels
}

// Empty reports whether neither region holds paths or labels.
func (s Snapshot) Empty() bool {
	return len(s.LeftPaths) == 0 && len(s.RightPaths) == 0 &&
		len(s.LeftLabels) == 0 && len(s.RightLabels) == 0
}

// Clone returns a deep copy so the receiver of a snapshot can never alias
// editor state.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		LeftPaths:          clonePaths(s.LeftPaths),
		RightPaths:         clonePaths(s.RightPaths),
		LeftLabels:         append([]LengthLabel{}, s.LeftLabels...),
		RightLabels:        append([]LengthLabel{}, s.RightLabels...),
		BackgroundImageRef: s.BackgroundImageRef,
	}
	if s.Metadata.Created != nil {
		t := *s.Metadata.Created
		c.Metadata.Created = &t
	}
	if s.Metadata.Updated != nil {
		t := *s.Metadata.Updated
		c.Metadata.Updated = &t
	}
	return c
}

func clonePaths(paths []Path) []Path {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.clone())
	}
	return out
}
