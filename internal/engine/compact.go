package engine

import "github.com/piwi3910/tagcloud/internal/model"

// compact slides an overlap-free rectangle towards the layout centre one unit
// at a time. Each round tries a horizontal move and then a vertical one, each
// committed only if it overlaps nothing. The directions are fixed when
// compaction starts; as soon as a move leaves the rectangle centre on the
// other side of the layout centre on either axis the rectangle is frozen
// where it is, so it never hunts back and forth. Compaction also stops after
// a round in which nothing moved. Returns the final rectangle and the number
// of unit moves made.
func (l *Layouter) compact(rect model.Rectangle) (model.Rectangle, int) {
	dirX, dirY := l.directions(rect)
	moves := 0

	for {
		moved := false

		if next := rect.Translate(dirX, 0); !l.placed.overlapsAny(next) {
			rect = next
			moved = true
			moves++
		}
		if next := rect.Translate(0, dirY); !l.placed.overlapsAny(next) {
			rect = next
			moved = true
			moves++
		}

		if !moved {
			return rect, moves
		}
		if nx, ny := l.directions(rect); nx != dirX || ny != dirY {
			return rect, moves
		}
	}
}

// directions returns the unit steps that move rect's centre towards the
// layout centre on each axis. A centre level with the layout centre gets +1.
func (l *Layouter) directions(rect model.Rectangle) (int, int) {
	c := rect.Center()
	return towards(c.X, l.center.X), towards(c.Y, l.center.Y)
}

func towards(from, to int) int {
	if from > to {
		return -1
	}
	return 1
}
