package engine

import (
	"fmt"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_CentersFirstRectangle(t *testing.T) {
	tests := []struct {
		name   string
		center model.Point
		size   model.Size
		want   model.Rectangle
	}{
		{"odd sides at origin", model.Point{}, model.Size{Width: 25, Height: 15}, model.Rect(-12, -7, 25, 15)},
		{"even width at origin", model.Point{}, model.Size{Width: 30, Height: 15}, model.Rect(-15, -7, 30, 15)},
		{"even height at origin", model.Point{}, model.Size{Width: 25, Height: 20}, model.Rect(-12, -10, 25, 20)},
		{"even sides at origin", model.Point{}, model.Size{Width: 30, Height: 20}, model.Rect(-15, -10, 30, 20)},
		{"odd sides off origin", model.Point{X: -100, Y: 100}, model.Size{Width: 25, Height: 15}, model.Rect(-112, 93, 25, 15)},
		{"even width off origin", model.Point{X: -100, Y: 100}, model.Size{Width: 30, Height: 15}, model.Rect(-115, 93, 30, 15)},
		{"even height off origin", model.Point{X: -100, Y: 100}, model.Size{Width: 25, Height: 20}, model.Rect(-112, 90, 25, 20)},
		{"even sides off origin", model.Point{X: -100, Y: 100}, model.Size{Width: 30, Height: 20}, model.Rect(-115, 90, 30, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewAt(tt.center)
			got, err := l.Place(tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []model.Rectangle{tt.want}, l.Rectangles())
		})
	}
}

func TestPlace_SecondSquareLandsBesideFirst(t *testing.T) {
	l := NewAt(model.Point{})
	sq := model.Size{Width: 10, Height: 10}

	first, err := l.Place(sq)
	require.NoError(t, err)
	second, err := l.Place(sq)
	require.NoError(t, err)

	assert.Equal(t, model.Rect(-5, -5, 10, 10), first)
	// Spiral hits (5,-2) at distance 10, compaction pulls it up to y=-5.
	assert.Equal(t, model.Rect(5, -5, 10, 10), second)
	assert.False(t, first.Overlaps(second))

	stats := l.Stats()
	assert.Equal(t, 2, stats.Placed)
	assert.Equal(t, 11, stats.SpiralSteps)
	assert.Equal(t, 3, stats.CompactionMoves)
}

func TestPlace_InvalidSize(t *testing.T) {
	l := NewAt(model.Point{})
	_, err := l.Place(model.Size{Width: 10, Height: 10})
	require.NoError(t, err)

	for _, s := range []model.Size{
		{Width: 0, Height: 10},
		{Width: 10, Height: 0},
		{Width: -3, Height: 5},
		{Width: 0, Height: 0},
	} {
		_, err := l.Place(s)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %s", s)
	}
	assert.Equal(t, 1, l.Len(), "rejected sizes must not be recorded")
}

func TestPlace_RejectsOversizedSides(t *testing.T) {
	l := NewAt(model.Point{})
	for _, s := range []model.Size{
		{Width: 1 << 32, Height: 1 << 32},
		{Width: model.MaxSide + 1, Height: 1},
		{Width: 1, Height: 1 << 40},
	} {
		_, err := l.Place(s)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %s", s)
	}
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, Stats{}, l.Stats())
}

func TestPlace_MaxSideRectangleIsAnObstacle(t *testing.T) {
	for _, cell := range []int{0, 64} {
		t.Run(fmt.Sprintf("cell=%d", cell), func(t *testing.T) {
			s := model.DefaultSettings()
			s.IndexCellSize = cell
			l := New(s)

			sizes := []model.Size{
				{Width: model.MaxSide, Height: model.MaxSide},
				{Width: 10, Height: 10},
				{Width: 30, Height: 20},
			}
			for _, size := range sizes {
				_, err := l.Place(size)
				require.NoError(t, err)
			}

			rects := l.Rectangles()
			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					assert.False(t, rects[i].Overlaps(rects[j]), "%s overlaps %s", rects[i], rects[j])
				}
			}
			if cell > 0 {
				assert.Equal(t, []int{0}, l.placed.wide)
			}
		})
	}
}

func TestPlace_ExplicitMaxRadiusExhausted(t *testing.T) {
	s := model.DefaultSettings()
	s.MaxRadius = 3
	l := New(s)

	_, err := l.Place(model.Size{Width: 10, Height: 10})
	require.NoError(t, err)
	before := l.BoundingBox()

	_, err = l.Place(model.Size{Width: 10, Height: 10})
	require.ErrorIs(t, err, ErrSearchExhausted)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, before, l.BoundingBox())

	// A small rectangle that does not fit either leaves the state alone too.
	_, err = l.Place(model.Size{Width: 1, Height: 1})
	require.ErrorIs(t, err, ErrSearchExhausted)
	assert.Equal(t, 1, l.Len())
}

func TestNew_SanitizesSettings(t *testing.T) {
	l := New(model.LayoutSettings{Center: model.Point{X: 3, Y: 4}, IndexCellSize: -1})
	got := l.Settings()
	assert.Equal(t, model.DefaultSettings().AngleStep, got.AngleStep)
	assert.Equal(t, 1, got.DistanceStep)
	assert.Equal(t, 0, got.IndexCellSize)
	assert.Equal(t, model.Point{X: 3, Y: 4}, l.Center())
}

func TestLayouter_EmptyState(t *testing.T) {
	l := NewAt(model.Point{X: 50, Y: -20})
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Rectangles())
	assert.Equal(t, model.Rectangle{}, l.BoundingBox())
	assert.Equal(t, Stats{}, l.Stats())
}

func TestLayouter_RectanglesIsSnapshot(t *testing.T) {
	l := NewAt(model.Point{})
	_, err := l.Place(model.Size{Width: 4, Height: 4})
	require.NoError(t, err)

	snap := l.Rectangles()
	snap[0] = model.Rect(1000, 1000, 1, 1)
	assert.Equal(t, model.Rect(-2, -2, 4, 4), l.Rectangles()[0])
}

func TestCompact_SlidesAlongObstacleUntilCentered(t *testing.T) {
	l := NewAt(model.Point{})
	l.placed.add(model.Rect(-5, -5, 10, 10))

	got, moves := l.compact(model.Rect(20, 20, 10, 10))
	assert.Equal(t, model.Rect(-5, 5, 10, 10), got)
	assert.Equal(t, 40, moves)
}

func TestCompact_StopsWhenAxisReachesCenter(t *testing.T) {
	l := NewAt(model.Point{})
	l.placed.add(model.Rect(100, 100, 10, 10))

	// x reaches the centre first; y is frozen where it is.
	got, _ := l.compact(model.Rect(20, 30, 10, 10))
	assert.Equal(t, model.Rect(-5, 5, 10, 10), got)
}

func TestCompact_BlockedOnBothAxes(t *testing.T) {
	l := NewAt(model.Point{})
	l.placed.add(model.Rect(-5, -5, 10, 10))
	l.placed.add(model.Rect(5, -14, 10, 10))

	got, moves := l.compact(model.Rect(5, -4, 10, 10))
	assert.Equal(t, model.Rect(5, -4, 10, 10), got)
	assert.Zero(t, moves)
}

func randomLayouter(t *testing.T, center model.Point, words []model.Word, cellSize int) *Layouter {
	t.Helper()
	s := model.DefaultSettings()
	s.Center = center
	s.IndexCellSize = cellSize
	l := New(s)
	for _, w := range words {
		_, err := l.Place(w.Size)
		require.NoError(t, err)
	}
	return l
}

func TestPlace_NeverOverlaps(t *testing.T) {
	for _, center := range []model.Point{{}, {X: -100, Y: 100}} {
		for _, seed := range []int64{1, 7, 42} {
			t.Run(fmt.Sprintf("%s/seed=%d", center, seed), func(t *testing.T) {
				words := RandomWords(100, model.Size{Width: 10, Height: 10}, model.Size{Width: 200, Height: 200}, seed)
				l := NewAt(center)
				var prevBox model.Rectangle
				for i, w := range words {
					r, err := l.Place(w.Size)
					require.NoError(t, err)
					assert.Equal(t, w.Size, r.Size)

					rects := l.Rectangles()
					for j := 0; j < i; j++ {
						require.False(t, rects[j].Overlaps(r), "rect %d %s overlaps rect %d %s", i, r, j, rects[j])
					}

					box := l.BoundingBox()
					if i > 0 {
						assert.True(t, box.Contains(prevBox), "bounding box shrank")
					}
					prevBox = box
				}
			})
		}
	}
}

func TestPlace_IsCircularAndDense(t *testing.T) {
	ranges := []struct {
		name     string
		min, max model.Size
	}{
		{"tag sized", model.Size{Width: 20, Height: 10}, model.Size{Width: 120, Height: 50}},
		{"wide range", model.Size{Width: 10, Height: 10}, model.Size{Width: 200, Height: 200}},
	}

	for _, rg := range ranges {
		for _, seed := range []int64{3, 11, 2024} {
			t.Run(fmt.Sprintf("%s/seed=%d", rg.name, seed), func(t *testing.T) {
				words := RandomWords(100, rg.min, rg.max, seed)
				l := randomLayouter(t, model.Point{X: -100, Y: 100}, words, 64)

				rects := l.Rectangles()
				box := model.BoundingBox(rects)
				assert.Equal(t, box, l.BoundingBox())
				assert.GreaterOrEqual(t, model.Circularity(box), 0.6)
				assert.GreaterOrEqual(t, model.FillRatio(rects), 0.4)
			})
		}
	}
}

func TestPlace_Deterministic(t *testing.T) {
	words := RandomWords(60, model.Size{Width: 10, Height: 10}, model.Size{Width: 80, Height: 40}, 99)
	a := randomLayouter(t, model.Point{X: 7, Y: -3}, words, 64)
	b := randomLayouter(t, model.Point{X: 7, Y: -3}, words, 64)
	assert.Equal(t, a.Rectangles(), b.Rectangles())
	assert.Equal(t, a.Stats(), b.Stats())
}

func TestPlace_GridIndexMatchesLinearScan(t *testing.T) {
	words := RandomWords(80, model.Size{Width: 5, Height: 5}, model.Size{Width: 150, Height: 60}, 5)
	linear := randomLayouter(t, model.Point{}, words, 0)
	for _, cell := range []int{1, 16, 64, 500} {
		grid := randomLayouter(t, model.Point{}, words, cell)
		assert.Equal(t, linear.Rectangles(), grid.Rectangles(), "cell size %d", cell)
	}
}

func TestPlacedSet_OverlapsAny(t *testing.T) {
	for _, cell := range []int{0, 3, 10} {
		s := newPlacedSet(cell)
		assert.False(t, s.overlapsAny(model.Rect(0, 0, 5, 5)), "empty set")

		s.add(model.Rect(-10, -10, 10, 10))
		s.add(model.Rect(0, 0, 10, 10))

		assert.True(t, s.overlapsAny(model.Rect(-1, -1, 2, 2)), "cell %d", cell)
		assert.True(t, s.overlapsAny(model.Rect(9, 9, 5, 5)), "cell %d", cell)
		assert.False(t, s.overlapsAny(model.Rect(10, 0, 5, 5)), "touching edge, cell %d", cell)
		assert.False(t, s.overlapsAny(model.Rect(0, -10, 10, 10)), "empty quadrant, cell %d", cell)
		assert.False(t, s.overlapsAny(model.Rect(100, 100, 1, 1)), "far away, cell %d", cell)
		assert.Equal(t, model.Rect(-10, -10, 20, 20), s.bounds)
	}
}

func TestPlacedSet_WideRectangles(t *testing.T) {
	s := newPlacedSet(1)
	s.add(model.Rect(0, 0, 100, 100))
	s.add(model.Rect(200, 0, 5, 5))
	assert.Equal(t, []int{0}, s.wide)

	assert.True(t, s.overlapsAny(model.Rect(50, 50, 2, 2)))
	assert.True(t, s.overlapsAny(model.Rect(201, 1, 2, 2)))
	assert.False(t, s.overlapsAny(model.Rect(100, 0, 5, 5)), "touching edge")
	assert.False(t, s.overlapsAny(model.Rect(150, 150, 2, 2)))

	// Queries too large for the grid fall back to the linear scan.
	assert.True(t, s.overlapsAny(model.Rect(-500, -500, 600, 600)))
	assert.False(t, s.overlapsAny(model.Rect(-500, -500, 400, 400)))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(0, 4))
	assert.Equal(t, 1, floorDiv(7, 4))
	assert.Equal(t, -1, floorDiv(-1, 4))
	assert.Equal(t, -1, floorDiv(-4, 4))
	assert.Equal(t, -2, floorDiv(-5, 4))
}
