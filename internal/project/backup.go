package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/tagcloud/internal/model"
)

const backupVersion = 1

// BackupData bundles the app config and saved presets into one file so they
// can be moved between machines.
type BackupData struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Presets   []Preset        `json:"presets"`
}

// ExportAllData writes the config and the saved presets to a single JSON file.
func ExportAllData(path string, config model.AppConfig, presets []Preset) error {
	if presets == nil {
		presets = []Preset{}
	}
	return writeJSON(path, BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Config:    config,
		Presets:   presets,
	})
}

// ImportAllData reads a file written by ExportAllData. Applying the result is
// up to the caller.
func ImportAllData(path string) (BackupData, error) {
	var backup BackupData
	if err := readJSON(path, &backup); err != nil {
		return BackupData{}, fmt.Errorf("import backup: %w", err)
	}
	if backup.Version == 0 {
		return BackupData{}, errors.New("import backup: missing version")
	}
	if backup.Version > backupVersion {
		return BackupData{}, fmt.Errorf("import backup: %w: %d", ErrUnsupportedVersion, backup.Version)
	}

	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Presets == nil {
		backup.Presets = []Preset{}
	}
	return backup, nil
}
