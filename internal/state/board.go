package state

import (
	"log"
	"time"
)

type layer struct {
	paths  []Path
	labels []LengthLabel
}

// Board holds the paths and labels of both regions. It is not synchronized;
// the Editor serializes access.
type Board struct {
	layers     map[Region]*layer
	background string
	created    *time.Time
	updated    *time.Time
}

func NewBoard() *Board {
	return &Board{
		layers: map[Region]*layer{
			RegionLeft:  {},
			RegionRight: {},
		},
	}
}

func (b *Board) layer(r Region) *layer {
	if l, ok := b.layers[r]; ok {
		return l
	}
	return b.layers[RegionLeft]
}

func (b *Board) Paths(r Region) []Path {
	return b.layer(r).paths
}

func (b *Board) Labels(r Region) []LengthLabel {
	return b.layer(r).labels
}

func (b *Board) addPath(p Path) {
	l := b.layer(p.Region)
	l.paths = append(l.paths, p)
}

func (b *Board) removePathAt(r Region, i int) bool {
	l := b.layer(r)
	if i < 0 || i >= len(l.paths) {
		return false
	}
	l.paths = append(l.paths[:i:i], l.paths[i+1:]...)
	return true
}

func (b *Board) pathIndex(r Region, id string) int {
	for i, p := range b.layer(r).paths {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) addLabel(lbl LengthLabel) {
	l := b.layer(lbl.Region)
	l.labels = append(l.labels, lbl)
}

// label returns a pointer into the region's label list, nil if absent.
func (b *Board) label(r Region, id string) *LengthLabel {
	l := b.layer(r)
	for i := range l.labels {
		if l.labels[i].ID == id {
			return &l.labels[i]
		}
	}
	return nil
}

func (b *Board) removeLabel(id string) bool {
	for _, r := range Regions {
		l := b.layer(r)
		filtered := l.labels[:0:0]
		for _, lbl := range l.labels {
			if lbl.ID != id {
				filtered = append(filtered, lbl)
			}
		}
		if len(filtered) != len(l.labels) {
			l.labels = filtered
			return true
		}
	}
	return false
}

func (b *Board) clearRegion(r Region) {
	l := b.layer(r)
	l.paths = nil
	l.labels = nil
}

func (b *Board) clearAll() {
	for _, r := range Regions {
		b.clearRegion(r)
	}
}

// touch stamps the mutation time, setting the creation time on first use.
func (b *Board) touch(now time.Time) {
	if b.created == nil {
		created := now
		b.created = &created
	}
	b.updated = &now
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		LeftPaths:          b.layer(RegionLeft).paths,
		RightPaths:         b.layer(RegionRight).paths,
		LeftLabels:         b.layer(RegionLeft).labels,
		RightLabels:        b.layer(RegionRight).labels,
		BackgroundImageRef: b.background,
		Metadata:           Metadata{Created: b.created, Updated: b.updated},
	}
	return s.Clone()
}

// Load replaces the whole board with the snapshot contents. Entities are
// re-homed to the collection they were found in, and ones missing an id get one.
func (b *Board) Load(s Snapshot) {
	s = s.Clone()
	for _, r := range Regions {
		l := b.layer(r)
		l.paths = s.Paths(r)
		for i := range l.paths {
			l.paths[i].Region = r
			if l.paths[i].ID == "" {
				l.paths[i].ID = newID()
			}
		}
		l.labels = s.Labels(r)
		for i := range l.labels {
			l.labels[i].Region = r
			if l.labels[i].ID == "" {
				l.labels[i].ID = newID()
			}
		}
	}
	b.background = s.BackgroundImageRef
	b.created = s.Metadata.Created
	b.updated = s.Metadata.Updated
	log.Printf("[BOARD] Loaded %d/%d paths, %d/%d labels",
		len(s.LeftPaths), len(s.RightPaths), len(s.LeftLabels), len(s.RightLabels))
}
