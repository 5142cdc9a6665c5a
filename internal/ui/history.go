package ui

import (
	"slices"

	"github.com/piwi3910/tagcloud/internal/model"
)

const defaultMaxDepth = 50

// Snapshot captures the editable project state at a point in time.
type Snapshot struct {
	Words    []model.Word
	Settings model.LayoutSettings
	Result   *model.LayoutResult
	Label    string // Human-readable description (e.g. "Add Word")
}

// History manages undo/redo stacks of project snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// Call it before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot and pushes current onto the redo
// stack. It reports false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent redo snapshot and pushes current onto the undo
// stack. It reports false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copyResult returns a copy of r that shares no slices with it.
func copyResult(r *model.LayoutResult) *model.LayoutResult {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Placements = slices.Clone(r.Placements)
	cp.Skipped = slices.Clone(r.Skipped)
	return &cp
}

// MakeSnapshot creates a snapshot of the given state with a label.
func MakeSnapshot(words []model.Word, settings model.LayoutSettings, result *model.LayoutResult, label string) Snapshot {
	return Snapshot{
		Words:    slices.Clone(words),
		Settings: settings,
		Result:   copyResult(result),
		Label:    label,
	}
}
