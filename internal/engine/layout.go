package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Layout places every word with a fresh Layouter built from settings.
// Words with a degenerate size are reported in Skipped and do not stop the
// batch. When SortLargestFirst is set, words are placed by descending area
// (stable, so equal areas keep their input order); otherwise input order is
// the placement order.
func Layout(words []model.Word, settings model.LayoutSettings) (model.LayoutResult, error) {
	result, _, err := layout(words, settings)
	return result, err
}

// layout is Layout that also returns the Layouter's work counters.
func layout(words []model.Word, settings model.LayoutSettings) (model.LayoutResult, Stats, error) {
	ordered := make([]model.Word, len(words))
	copy(ordered, words)
	if settings.SortLargestFirst {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Size.Area() > ordered[j].Size.Area()
		})
	}

	l := New(settings)
	result := model.LayoutResult{
		Center:     l.Center(),
		Placements: make([]model.Placement, 0, len(ordered)),
	}

	for _, w := range ordered {
		rect, err := l.Place(w.Size)
		if errors.Is(err, ErrInvalidSize) {
			result.Skipped = append(result.Skipped, w)
			continue
		}
		if err != nil {
			return result, l.Stats(), fmt.Errorf("placing %q: %w", w.Label, err)
		}
		result.Placements = append(result.Placements, model.Placement{Word: w, Rect: rect})
	}

	return result, l.Stats(), nil
}

// LayoutSizes is a convenience wrapper for callers that only have sizes.
// Words are labelled "word-1", "word-2", ... in input order.
func LayoutSizes(sizes []model.Size, settings model.LayoutSettings) (model.LayoutResult, error) {
	words := make([]model.Word, len(sizes))
	for i, s := range sizes {
		words[i] = model.NewWord(fmt.Sprintf("word-%d", i+1), s.Width, s.Height)
	}
	return Layout(words, settings)
}
