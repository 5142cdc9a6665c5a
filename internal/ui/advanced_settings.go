package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
)

// showAdvancedSettingsDialog opens the settings that rarely need changing:
// the overlap index and the spiral limit of the current project.
func (a *App) showAdvancedSettingsDialog() {
	s := a.project.Settings

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	indexSection := widget.NewCard("Overlap Index",
		"Grid cell size used to find neighbouring words (0 = compare against every word)",
		container.NewGridWithColumns(2,
			widget.NewLabel("Cell Size"), intEntry(&s.IndexCellSize),
		))

	limitSection := widget.NewCard("Search Limit",
		"Stop the spiral at this radius and report an error (0 = never give up)",
		container.NewGridWithColumns(2,
			widget.NewLabel("Max Radius"), intEntry(&s.MaxRadius),
			widget.NewLabel("Distance Step"), intEntry(&s.DistanceStep),
		))

	resetBtn := widget.NewButtonWithIcon("Reset to Defaults", theme.ViewRestoreIcon(), func() {
		defaults := model.DefaultSettings()
		a.config.ApplyToSettings(&defaults)
		defaults.Center = a.project.Settings.Center
		a.pushHistory("Reset Settings")
		a.project.Settings = defaults
		a.refreshSettings()
	})

	content := container.NewVBox(indexSection, limitSection, container.NewHBox(layout.NewSpacer(), resetBtn))

	d := dialog.NewCustomConfirm("Advanced Settings", "Apply", "Cancel", content,
		func(ok bool) {
			if !ok {
				return
			}
			if s.IndexCellSize < 0 || s.MaxRadius < 0 || s.DistanceStep <= 0 {
				dialog.ShowError(fmt.Errorf("cell size and max radius must be >= 0, distance step > 0"), a.window)
				return
			}
			a.pushHistory("Advanced Settings")
			a.project.Settings.IndexCellSize = s.IndexCellSize
			a.project.Settings.MaxRadius = s.MaxRadius
			a.project.Settings.DistanceStep = s.DistanceStep
			a.refreshSettings()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

// buildPresetSelector lets the user apply a saved preset or save the
// current settings as one.
func (a *App) buildPresetSelector() fyne.CanvasObject {
	names := make([]string, len(a.presets))
	for i, p := range a.presets {
		names[i] = p.Name
	}

	selector := widget.NewSelect(names, func(selected string) {
		p, ok := project.FindPreset(a.presets, selected)
		if !ok {
			return
		}
		a.pushHistory("Apply Preset " + p.Name)
		center := a.project.Settings.Center
		a.project.Settings = p.Settings
		a.project.Settings.Center = center
		a.refreshSettings()
	})
	selector.PlaceHolder = "Apply a preset..."

	saveBtn := widget.NewButtonWithIcon("Save as Preset", theme.DocumentSaveIcon(), a.showSavePresetDialog)

	return container.NewBorder(nil, nil, nil, saveBtn, selector)
}

func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")

	dialog.ShowForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
		func(ok bool) {
			if !ok {
				return
			}
			presets, err := project.UpsertPreset(a.presets, project.Preset{Name: nameEntry.Text, Settings: a.project.Settings})
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if err := project.SavePresets(project.DefaultPresetsPath(), presets); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
				return
			}
			a.presets = presets
			a.refreshSettings()
		},
		a.window,
	)
}
