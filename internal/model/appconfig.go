package model

import "math"

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default layout settings applied to new projects
	DefaultAngleDivisions   int  `json:"default_angle_divisions"` // spiral samples per revolution
	DefaultDistanceStep     int  `json:"default_distance_step"`
	DefaultMaxRadius        int  `json:"default_max_radius"`
	DefaultSortLargestFirst bool `json:"default_sort_largest_first"`
	DefaultIndexCellSize    int  `json:"default_index_cell_size"`

	// Rendering defaults
	RenderMargin int     `json:"render_margin"` // pixels around the bounding box
	RenderScale  float64 `json:"render_scale"`
	RenderFill   bool    `json:"render_fill"` // fill rectangles instead of outlines only

	// HTTP API
	ServerAddr string `json:"server_addr"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultAngleDivisions:   DefaultAngleDivisions,
		DefaultDistanceStep:     defaults.DistanceStep,
		DefaultMaxRadius:        defaults.MaxRadius,
		DefaultSortLargestFirst: defaults.SortLargestFirst,
		DefaultIndexCellSize:    defaults.IndexCellSize,
		RenderMargin:            2,
		RenderScale:             1,
		RenderFill:              false,
		ServerAddr:              ":8080",
		RecentProjects:          []string{},
		Theme:                   "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a LayoutSettings struct.
// The centre is left alone; it belongs to the layout, not to the user's preferences.
func (c AppConfig) ApplyToSettings(s *LayoutSettings) {
	if c.DefaultAngleDivisions > 0 {
		s.AngleStep = math.Pi / float64(c.DefaultAngleDivisions)
	}
	if c.DefaultDistanceStep > 0 {
		s.DistanceStep = c.DefaultDistanceStep
	}
	s.MaxRadius = c.DefaultMaxRadius
	s.SortLargestFirst = c.DefaultSortLargestFirst
	s.IndexCellSize = c.DefaultIndexCellSize
}
