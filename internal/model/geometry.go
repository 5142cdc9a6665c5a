package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point represents an integer 2D coordinate. Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair. A size with a non-positive side is degenerate.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns width*height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// MaxSide is the longest side a placed rectangle may have. It keeps areas,
// edges and spiral distances well inside int range.
const MaxSide = 1 << 16

// MaxCoord bounds the absolute value of a layout centre coordinate.
const MaxCoord = 1 << 30

// Valid reports whether both sides are positive and at most MaxSide.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0 && s.Width <= MaxSide && s.Height <= MaxSide
}

// InRange reports whether both coordinates lie within ±MaxCoord.
func (p Point) InRange() bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}

// Half returns the offset from a rectangle's top-left corner to its centre.
// Division truncates, so odd sides put the centre on the lower cell.
func (s Size) Half() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a "WxH" string such as "25x15".
func ParseSize(str string) (Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(str)), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q: expected WxH", str)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", str, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", str, err)
	}
	return Size{Width: w, Height: h}, nil
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	Location Point `json:"location"`
	Size     Size  `json:"size"`
}

// Rect is shorthand for building a Rectangle from its four scalars.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{Location: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// CenteredAt returns a rectangle of the given size whose centre is c.
func CenteredAt(c Point, s Size) Rectangle {
	return Rectangle{Location: c.Sub(s.Half()), Size: s}
}

func (r Rectangle) Left() int   { return r.Location.X }
func (r Rectangle) Top() int    { return r.Location.Y }
func (r Rectangle) Right() int  { return r.Location.X + r.Size.Width }
func (r Rectangle) Bottom() int { return r.Location.Y + r.Size.Height }
func (r Rectangle) Area() int   { return r.Size.Area() }

// Center returns the centre cell using the same truncation as Size.Half.
func (r Rectangle) Center() Point {
	return r.Location.Add(r.Size.Half())
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rectangle) Translate(dx, dy int) Rectangle {
	return Rectangle{Location: Point{X: r.Location.X + dx, Y: r.Location.Y + dy}, Size: r.Size}
}

// Overlaps reports whether r and o share a region of positive area.
// Touching edges or corners is not an overlap.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return min(r.Right(), o.Right()) > max(r.Left(), o.Left()) &&
		min(r.Bottom(), o.Bottom()) > max(r.Top(), o.Top())
}

// Contains reports whether o lies completely inside r.
func (r Rectangle) Contains(o Rectangle) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	left := min(r.Left(), o.Left())
	top := min(r.Top(), o.Top())
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect(left, top, right-left, bottom-top)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d}", r.Location.X, r.Location.Y, r.Size.Width, r.Size.Height)
}

// BoundingBox returns the smallest rectangle containing every rectangle in
// rects. An empty slice yields the zero Rectangle.
func BoundingBox(rects []Rectangle) Rectangle {
	if len(rects) == 0 {
		return Rectangle{}
	}
	box := rects[0]
	for _, r := range rects[1:] {
		box = box.Union(r)
	}
	return box
}
