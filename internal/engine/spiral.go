package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/tagcloud/internal/model"
)

// spiralSearch returns the first rectangle of the given size that does not
// overlap anything already placed. It starts centred on the layout centre and
// walks an Archimedean spiral: each step adds AngleStep to the angle and
// DistanceStep to the radius, and the displacement is rounded up on both axes.
// The number of candidates tried after the start position is returned too.
func (l *Layouter) spiralSearch(size model.Size) (model.Rectangle, int, error) {
	start := model.CenteredAt(l.center, size)
	if !l.placed.overlapsAny(start) {
		return start, 0, nil
	}

	limit := l.radiusLimit(start)
	angle := 0.0
	distance := 0
	steps := 0
	for {
		if distance > limit {
			return model.Rectangle{}, steps, fmt.Errorf("%w: %d exceeded placing %s", ErrSearchExhausted, limit, size)
		}

		dx := int(math.Ceil(float64(distance) * math.Cos(angle)))
		dy := int(math.Ceil(float64(distance) * math.Sin(angle)))
		candidate := start.Translate(dx, dy)
		steps++
		if !l.placed.overlapsAny(candidate) {
			return candidate, steps, nil
		}

		angle += l.settings.AngleStep
		distance += l.settings.DistanceStep
	}
}
