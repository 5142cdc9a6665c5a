package model

import (
	"math"

	"github.com/google/uuid"
)

// Word is an opaque rectangle request: a label plus the size of its box.
// The layout never looks at the label.
type Word struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Size  Size   `json:"size"`
}

func NewWord(label string, w, h int) Word {
	return Word{
		ID:    uuid.New().String()[:8],
		Label: label,
		Size:  Size{Width: w, Height: h},
	}
}

// Placement is a word together with the rectangle it was given.
type Placement struct {
	Word Word      `json:"word"`
	Rect Rectangle `json:"rect"`
}

// LayoutSettings holds the tunables of the circular cloud layouter.
type LayoutSettings struct {
	Center Point `json:"center"`

	// Spiral search
	AngleStep    float64 `json:"angle_step"`    // radians added per spiral step
	DistanceStep int     `json:"distance_step"` // radial units added per spiral step
	MaxRadius    int     `json:"max_radius"`    // 0 = derive a safe limit from the placed set

	// Batch layout
	SortLargestFirst bool `json:"sort_largest_first"` // place larger words first

	// Overlap index cell size; 0 falls back to a linear scan
	IndexCellSize int `json:"index_cell_size"`
}

// DefaultAngleDivisions is the number of spiral samples per revolution.
const DefaultAngleDivisions = 120

func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		Center:           Point{},
		AngleStep:        math.Pi / DefaultAngleDivisions,
		DistanceStep:     1,
		MaxRadius:        0,
		SortLargestFirst: false,
		IndexCellSize:    64,
	}
}

// LayoutResult is the full outcome of laying out a list of words.
type LayoutResult struct {
	Center     Point       `json:"center"`
	Placements []Placement `json:"placements"`
	Skipped    []Word      `json:"skipped,omitempty"` // words with a degenerate size
}

// Rectangles returns the placed rectangles in placement order.
func (lr LayoutResult) Rectangles() []Rectangle {
	rects := make([]Rectangle, len(lr.Placements))
	for i, p := range lr.Placements {
		rects[i] = p.Rect
	}
	return rects
}

// BoundingBox returns the bounding box of all placements.
func (lr LayoutResult) BoundingBox() Rectangle {
	return BoundingBox(lr.Rectangles())
}

// UsedArea returns the total area covered by placed rectangles.
func (lr LayoutResult) UsedArea() int {
	total := 0
	for _, p := range lr.Placements {
		total += p.Rect.Area()
	}
	return total
}

// Circularity returns the shorter side of the bounding box divided by the
// longer one. A degenerate box counts as perfectly round.
func (lr LayoutResult) Circularity() float64 {
	return Circularity(lr.BoundingBox())
}

// FillRatio returns the used area divided by the area of the circle whose
// diameter is the longer side of the bounding box.
func (lr LayoutResult) FillRatio() float64 {
	return FillRatio(lr.Rectangles())
}

// Circularity is the aspect ratio (short/long) of a bounding box.
func Circularity(box Rectangle) float64 {
	w, h := box.Size.Width, box.Size.Height
	if w == 0 || h == 0 {
		return 1
	}
	if w > h {
		return float64(h) / float64(w)
	}
	return float64(w) / float64(h)
}

// FillRatio compares the area of rects to the circle around their bounding box.
func FillRatio(rects []Rectangle) float64 {
	box := BoundingBox(rects)
	radius := float64(max(box.Size.Width, box.Size.Height)) / 2
	circle := math.Pi * radius * radius
	if circle == 0 {
		return 0
	}
	used := 0
	for _, r := range rects {
		used += r.Area()
	}
	return float64(used) / circle
}

// Project ties everything together for save/load.
type Project struct {
	Name     string         `json:"name"`
	Words    []Word         `json:"words"`
	Settings LayoutSettings `json:"settings"`
	Result   *LayoutResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Words:    []Word{},
		Settings: DefaultSettings(),
	}
}
