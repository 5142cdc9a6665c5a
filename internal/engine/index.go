package engine

import "github.com/piwi3910/tagcloud/internal/model"

// maxIndexedCells is the most grid cells one rectangle is filed under.
// Larger rectangles go to the wide list and are checked on every query.
const maxIndexedCells = 4096

// cellKey addresses one bucket of the uniform grid.
type cellKey struct {
	cx, cy int
}

// placedSet is the append-only list of placed rectangles. When cellSize is
// positive it also keeps a uniform bucket grid so overlap queries only look
// at rectangles sharing a cell with the probe. Answers are identical to a
// linear scan over rects.
type placedSet struct {
	rects    []model.Rectangle
	cellSize int
	cells    map[cellKey][]int
	wide     []int
	bounds   model.Rectangle
}

func newPlacedSet(cellSize int) *placedSet {
	s := &placedSet{cellSize: cellSize}
	if cellSize > 0 {
		s.cells = make(map[cellKey][]int)
	}
	return s
}

func (s *placedSet) len() int {
	return len(s.rects)
}

// add appends r. Rectangles are never removed or mutated afterwards.
func (s *placedSet) add(r model.Rectangle) {
	idx := len(s.rects)
	s.rects = append(s.rects, r)
	if idx == 0 {
		s.bounds = r
	} else {
		s.bounds = s.bounds.Union(r)
	}

	if s.cells == nil || empty(r) {
		return
	}
	x0, y0, x1, y1, ok := s.indexRange(r)
	if !ok {
		s.wide = append(s.wide, idx)
		return
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			k := cellKey{cx, cy}
			s.cells[k] = append(s.cells[k], idx)
		}
	}
}

// overlapsAny reports whether r overlaps any placed rectangle.
func (s *placedSet) overlapsAny(r model.Rectangle) bool {
	if len(s.rects) == 0 || empty(r) {
		return false
	}
	// Cheap reject: nothing can overlap outside the bounding box.
	if !s.bounds.Overlaps(r) {
		return false
	}
	if s.cells == nil {
		return s.scan(r)
	}

	x0, y0, x1, y1, ok := s.indexRange(r)
	if !ok {
		return s.scan(r)
	}
	for _, idx := range s.wide {
		if s.rects[idx].Overlaps(r) {
			return true
		}
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, idx := range s.cells[cellKey{cx, cy}] {
				if s.rects[idx].Overlaps(r) {
					return true
				}
			}
		}
	}
	return false
}

// scan is the reference linear check.
func (s *placedSet) scan(r model.Rectangle) bool {
	for _, p := range s.rects {
		if p.Overlaps(r) {
			return true
		}
	}
	return false
}

// cellRange returns the inclusive cell coordinates covered by r's interior.
func (s *placedSet) cellRange(r model.Rectangle) (x0, y0, x1, y1 int) {
	return floorDiv(r.Left(), s.cellSize), floorDiv(r.Top(), s.cellSize),
		floorDiv(r.Right()-1, s.cellSize), floorDiv(r.Bottom()-1, s.cellSize)
}

// indexRange is cellRange for rectangles covering at most maxIndexedCells
// cells; ok is false for anything larger.
func (s *placedSet) indexRange(r model.Rectangle) (x0, y0, x1, y1 int, ok bool) {
	x0, y0, x1, y1 = s.cellRange(r)
	cols, rows := x1-x0+1, y1-y0+1
	if cols > maxIndexedCells || rows > maxIndexedCells || cols*rows > maxIndexedCells {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// empty reports whether r has no interior. Sides are tested directly since
// an area product can overflow.
func empty(r model.Rectangle) bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// snapshot returns a copy of the placed rectangles in insertion order.
func (s *placedSet) snapshot() []model.Rectangle {
	out := make([]model.Rectangle, len(s.rects))
	copy(out, s.rects)
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
