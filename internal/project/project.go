package project

import (
	"errors"
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
)

// FileExtension is the conventional extension for saved projects.
const FileExtension = ".tagcloud"

// projectVersion is written into every saved project file.
const projectVersion = 1

// ErrUnsupportedVersion is returned when a project or backup file was
// written by a newer format version.
var ErrUnsupportedVersion = errors.New("unsupported file version")

type projectFile struct {
	Version int `json:"version"`
	model.Project
}

// SaveProject writes a project as JSON, creating parent directories.
func SaveProject(path string, proj model.Project) error {
	if err := writeJSON(path, projectFile{Version: projectVersion, Project: proj}); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

// LoadProject reads a project written by SaveProject.
func LoadProject(path string) (model.Project, error) {
	var pf projectFile
	if err := readJSON(path, &pf); err != nil {
		return model.Project{}, fmt.Errorf("load project: %w", err)
	}
	if pf.Version == 0 || pf.Version > projectVersion {
		return model.Project{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, pf.Version)
	}

	proj := pf.Project
	if proj.Words == nil {
		proj.Words = []model.Word{}
	}
	return proj, nil
}
