// Package engine implements the circular cloud layout: every new rectangle is
// found a free spot on an Archimedean spiral around a fixed centre and then
// compacted towards that centre, so that no two rectangles ever overlap and
// the cloud stays round and dense.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/piwi3910/tagcloud/internal/model"
)

var (
	// ErrInvalidSize is returned when a requested side is not positive or
	// exceeds model.MaxSide.
	ErrInvalidSize = fmt.Errorf("rectangle width and height must be positive and at most %d", model.MaxSide)

	// ErrSearchExhausted is returned when the spiral passes an explicit MaxRadius
	// without finding a free position.
	ErrSearchExhausted = errors.New("spiral search reached the maximum radius")
)

// Stats counts the work done by a Layouter since it was created.
type Stats struct {
	Placed          int `json:"placed"`
	SpiralSteps     int `json:"spiral_steps"`     // candidates tried beyond the start position
	CompactionMoves int `json:"compaction_moves"` // unit moves committed during compaction
}

// Layouter places rectangles one at a time around a fixed centre.
//
// A Layouter is not safe for concurrent use. Callers that share one between
// goroutines must serialize Place calls themselves.
type Layouter struct {
	center   model.Point
	settings model.LayoutSettings
	placed   *placedSet
	stats    Stats
}

// New creates a Layouter centred at settings.Center.
func New(settings model.LayoutSettings) *Layouter {
	defaults := model.DefaultSettings()
	if settings.AngleStep <= 0 {
		settings.AngleStep = defaults.AngleStep
	}
	if settings.DistanceStep <= 0 {
		settings.DistanceStep = defaults.DistanceStep
	}
	if settings.IndexCellSize < 0 {
		settings.IndexCellSize = 0
	}
	return &Layouter{
		center:   settings.Center,
		settings: settings,
		placed:   newPlacedSet(settings.IndexCellSize),
	}
}

// NewAt creates a Layouter with default settings centred at center.
func NewAt(center model.Point) *Layouter {
	s := model.DefaultSettings()
	s.Center = center
	return New(s)
}

// Place finds a position for a rectangle of the given size, records it and
// returns it. The first rectangle is always centred exactly on the layout
// centre. On error nothing is recorded.
func (l *Layouter) Place(size model.Size) (model.Rectangle, error) {
	if !size.Valid() {
		return model.Rectangle{}, fmt.Errorf("%w: got %s", ErrInvalidSize, size)
	}

	rect, steps, err := l.spiralSearch(size)
	l.stats.SpiralSteps += steps
	if err != nil {
		return model.Rectangle{}, err
	}

	if l.placed.len() > 0 {
		var moves int
		rect, moves = l.compact(rect)
		l.stats.CompactionMoves += moves
	}

	l.placed.add(rect)
	l.stats.Placed++
	return rect, nil
}

// Rectangles returns a snapshot of the placed rectangles in placement order.
func (l *Layouter) Rectangles() []model.Rectangle {
	return l.placed.snapshot()
}

// Len returns the number of placed rectangles.
func (l *Layouter) Len() int {
	return l.placed.len()
}

// Center returns the fixed layout centre.
func (l *Layouter) Center() model.Point {
	return l.center
}

// Settings returns the effective settings after defaults were applied.
func (l *Layouter) Settings() model.LayoutSettings {
	return l.settings
}

// BoundingBox returns the bounding box of everything placed so far.
func (l *Layouter) BoundingBox() model.Rectangle {
	if l.placed.len() == 0 {
		return model.Rectangle{}
	}
	return l.placed.bounds
}

// Stats returns the work counters accumulated since New.
func (l *Layouter) Stats() Stats {
	return l.stats
}

// radiusLimit returns the spiral distance after which the search gives up.
// Without an explicit MaxRadius the limit is large enough that any candidate
// at that distance lies outside the current bounding box, so the search
// always succeeds before reaching it.
func (l *Layouter) radiusLimit(start model.Rectangle) int {
	if l.settings.MaxRadius > 0 {
		return l.settings.MaxRadius
	}
	b := l.placed.bounds
	reach := max(
		b.Right()-start.Left(),
		start.Right()-b.Left(),
		b.Bottom()-start.Top(),
		start.Bottom()-b.Top(),
		0,
	)
	// A candidate at distance d is displaced by at least d/sqrt(2)-1 on one axis.
	return int(math.Ceil(math.Sqrt2*float64(reach+1))) + l.settings.DistanceStep
}
