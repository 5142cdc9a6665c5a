package project

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Preset is a named set of layout settings the user can reuse.
type Preset struct {
	Name     string               `json:"name"`
	Settings model.LayoutSettings `json:"settings"`
}

// DefaultPresetsPath returns the default file path for saved presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes presets to a JSON file sorted by name.
func SavePresets(path string, presets []Preset) error {
	sorted := make([]Preset, len(presets))
	copy(sorted, presets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return writeJSON(path, sorted)
}

// LoadPresets loads presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadPresets(path string) ([]Preset, error) {
	presets := []Preset{}
	if err := readJSON(path, &presets); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Preset{}, nil
		}
		return nil, err
	}
	return presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// UpsertPreset replaces the preset with the same name or appends p.
func UpsertPreset(presets []Preset, p Preset) ([]Preset, error) {
	if p.Name == "" {
		return presets, errors.New("preset has no name")
	}
	for i := range presets {
		if presets[i].Name == p.Name {
			presets[i] = p
			return presets, nil
		}
	}
	return append(presets, p), nil
}
