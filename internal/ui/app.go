package ui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tagcloud/internal/engine"
	"github.com/piwi3910/tagcloud/internal/export"
	wordimporter "github.com/piwi3910/tagcloud/internal/importer"
	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
	"github.com/piwi3910/tagcloud/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	project model.Project
	config  model.AppConfig
	presets []project.Preset
	history *History
	theme   *TagCloudTheme
	tabs    *container.AppTabs

	// UI references for dynamic updates
	wordsContainer  *fyne.Container
	settingsScroll  *container.Scroll
	resultContainer *fyne.Container
	status          *widget.Label
}

func NewApp(application fyne.App, window fyne.Window) *App {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fyne.LogError("loading config", err)
		cfg = model.DefaultAppConfig()
	}
	presets, err := project.LoadPresets(project.DefaultPresetsPath())
	if err != nil {
		fyne.LogError("loading presets", err)
	}

	a := &App{
		app:     application,
		window:  window,
		config:  cfg,
		presets: presets,
		history: NewHistory(),
		theme:   NewTagCloudTheme(cfg.Theme),
	}
	a.project = a.newProject()
	application.Settings().SetTheme(a.theme)
	return a
}

// newProject returns an empty project using the configured defaults.
func (a *App) newProject() model.Project {
	proj := model.NewProject()
	a.config.ApplyToSettings(&proj.Settings)
	return proj
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	exportItem := func(label string, f export.Format) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() { a.exportAs(f) })
	}

	recentItem := fyne.NewMenuItem("Open Recent", nil)
	recentItem.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.pushHistory("New Project")
			a.project = a.newProject()
			a.refreshAll()
		}),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		recentItem,
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Words...", a.importWords),
		fyne.NewMenuItemSeparator(),
		exportItem("Export PNG...", export.FormatPNG),
		exportItem("Export PDF Report...", export.FormatPDF),
		exportItem("Export Labels...", export.FormatLabels),
		exportItem("Export DXF...", export.FormatDXF),
		exportItem("Export Excel...", export.FormatXLSX),
		exportItem("Export JSON...", export.FormatJSON),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Word...", a.showAddWordDialog),
		fyne.NewMenuItem("Clear All Words", func() {
			a.pushHistory("Clear Words")
			a.project.Words = []model.Word{}
			a.project.Result = nil
			a.refreshAll()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Lay Out", a.runLayout),
		fyne.NewMenuItem("Random Cloud...", a.showRandomDialog),
		fyne.NewMenuItem("Compare Scenarios...", a.showCompareDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Advanced Settings...", a.showAdvancedSettingsDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentProjects {
		p := path
		items = append(items, fyne.NewMenuItem(p, func() { a.openProject(p) }))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent projects", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("Open Recent", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TagCloud",
		"TagCloud — circular tag cloud layouter\n\n"+
			"Places word boxes on a spiral around a centre and pulls\n"+
			"each one inwards, producing a round, dense cloud.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	wordsTab := container.NewTabItem("Words", a.buildWordsPanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())
	cloudTab := container.NewTabItem("Cloud", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(wordsTab, settingsTab, cloudTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.importWords),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.saveProject),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPlayIcon(), a.runLayout),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), a.showRandomDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { a.exportAs(export.FormatPNG) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { a.exportAs(export.FormatPDF) }),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), a.undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), a.redo),
	)

	a.status = widget.NewLabel("")
	a.refreshStatus()

	return container.NewBorder(toolbar, a.status, nil, nil, a.tabs)
}

// ─── Words Panel ───────────────────────────────────────────

func (a *App) buildWordsPanel() fyne.CanvasObject {
	a.wordsContainer = container.NewVBox()
	a.refreshWordsList()

	addBtn := widget.NewButtonWithIcon("Add Word", theme.ContentAddIcon(), a.showAddWordDialog)

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Words", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.wordsContainer),
	)
}

func (a *App) refreshWordsList() {
	a.wordsContainer.RemoveAll()

	if len(a.project.Words) == 0 {
		a.wordsContainer.Add(widget.NewLabel("No words added yet. Click 'Add Word' or import a word list."))
		return
	}

	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.wordsContainer.Add(header)
	a.wordsContainer.Add(widget.NewSeparator())

	for i := range a.project.Words {
		idx := i
		w := a.project.Words[idx]
		row := container.NewGridWithColumns(5,
			widget.NewLabel(w.Label),
			widget.NewLabel(strconv.Itoa(w.Size.Width)),
			widget.NewLabel(strconv.Itoa(w.Size.Height)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditWordDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.pushHistory("Delete Word")
				a.project.Words = append(a.project.Words[:idx], a.project.Words[idx+1:]...)
				a.refreshWordsList()
				a.refreshStatus()
			}),
		)
		a.wordsContainer.Add(row)
	}
}

// wordForm builds the label/width/height entries shared by the add and
// edit dialogs.
func wordForm(w model.Word) (label, width, height *widget.Entry, items []*widget.FormItem) {
	label = widget.NewEntry()
	label.SetPlaceHolder("Word")
	label.SetText(w.Label)

	width = widget.NewEntry()
	width.SetPlaceHolder("Width")
	if w.Size.Width > 0 {
		width.SetText(strconv.Itoa(w.Size.Width))
	}

	height = widget.NewEntry()
	height.SetPlaceHolder("Height")
	if w.Size.Height > 0 {
		height.SetText(strconv.Itoa(w.Size.Height))
	}

	items = []*widget.FormItem{
		widget.NewFormItem("Label", label),
		widget.NewFormItem("Width", width),
		widget.NewFormItem("Height", height),
	}
	return label, width, height, items
}

// parseWordSize validates the width and height entry texts.
func parseWordSize(width, height string) (model.Size, error) {
	w, errW := strconv.Atoi(strings.TrimSpace(width))
	h, errH := strconv.Atoi(strings.TrimSpace(height))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return model.Size{}, errors.New("width and height must be whole numbers greater than 0")
	}
	return model.Size{Width: w, Height: h}, nil
}

func (a *App) showAddWordDialog() {
	labelEntry, widthEntry, heightEntry, items := wordForm(model.Word{
		Label: fmt.Sprintf("word-%d", len(a.project.Words)+1),
	})

	form := dialog.NewForm("Add Word", "Add", "Cancel", items,
		func(ok bool) {
			if !ok {
				return
			}
			size, err := parseWordSize(widthEntry.Text, heightEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.pushHistory("Add Word")
			a.project.Words = append(a.project.Words, model.NewWord(labelEntry.Text, size.Width, size.Height))
			a.refreshWordsList()
			a.refreshStatus()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

func (a *App) showEditWordDialog(idx int) {
	labelEntry, widthEntry, heightEntry, items := wordForm(a.project.Words[idx])

	form := dialog.NewForm("Edit Word", "Save", "Cancel", items,
		func(ok bool) {
			if !ok {
				return
			}
			size, err := parseWordSize(widthEntry.Text, heightEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.pushHistory("Edit Word")
			a.project.Words[idx].Label = labelEntry.Text
			a.project.Words[idx].Size = size
			a.refreshWordsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	a.settingsScroll = container.NewVScroll(a.buildSettingsContent())
	return a.settingsScroll
}

func (a *App) refreshSettings() {
	if a.settingsScroll == nil {
		return
	}
	a.settingsScroll.Content = a.buildSettingsContent()
	a.settingsScroll.Refresh()
}

func (a *App) buildSettingsContent() fyne.CanvasObject {
	s := &a.project.Settings

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
				*val = v
			}
		}
		return e
	}

	divisions := widget.NewEntry()
	divisions.SetText(strconv.Itoa(angleDivisions(s.AngleStep)))
	divisions.OnChanged = func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && v > 0 {
			s.AngleStep = math.Pi / float64(v)
		}
	}

	largestFirst := widget.NewCheck("", func(b bool) { s.SortLargestFirst = b })
	largestFirst.Checked = s.SortLargestFirst

	centerSection := widget.NewCard("Centre", "Where the first word is placed", container.NewGridWithColumns(2,
		widget.NewLabel("Centre X"), intEntry(&s.Center.X),
		widget.NewLabel("Centre Y"), intEntry(&s.Center.Y),
	))

	spiralSection := widget.NewCard("Spiral", "", container.NewGridWithColumns(2,
		widget.NewLabel("Angle Divisions (step = π/N)"), divisions,
		widget.NewLabel("Distance Step"), intEntry(&s.DistanceStep),
		widget.NewLabel("Max Radius (0 = unbounded)"), intEntry(&s.MaxRadius),
		widget.NewLabel("Largest Words First"), largestFirst,
	))

	presetSection := widget.NewCard("Presets", "", a.buildPresetSelector())

	return container.NewVBox(centerSection, spiralSection, presetSection)
}

// angleDivisions converts an angle step back to N for step = π/N.
func angleDivisions(step float64) int {
	if step <= 0 {
		return model.DefaultAngleDivisions
	}
	return int(math.Round(math.Pi / step))
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(widgets.RenderCloudResult(a.project.Result))
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderCloudResult(a.project.Result))
	a.resultContainer.Refresh()
}

func (a *App) refreshStatus() {
	if a.status == nil {
		return
	}
	text := fmt.Sprintf("%s · %d words", a.project.Name, len(a.project.Words))
	if a.project.Result != nil {
		text += " · " + widgets.Summary(*a.project.Result)
	}
	a.status.SetText(text)
}

func (a *App) refreshAll() {
	a.refreshWordsList()
	a.refreshSettings()
	a.refreshResults()
	a.refreshStatus()
}

// ─── History ───────────────────────────────────────────────

func (a *App) snapshot(label string) Snapshot {
	return MakeSnapshot(a.project.Words, a.project.Settings, a.project.Result, label)
}

func (a *App) restore(s Snapshot) {
	a.project.Words = s.Words
	if a.project.Words == nil {
		a.project.Words = []model.Word{}
	}
	a.project.Settings = s.Settings
	a.project.Result = s.Result
	a.refreshAll()
}

func (a *App) pushHistory(label string) {
	a.history.Push(a.snapshot(label))
}

func (a *App) undo() {
	if s, ok := a.history.Undo(a.snapshot("")); ok {
		a.restore(s)
	}
}

func (a *App) redo() {
	if s, ok := a.history.Redo(a.snapshot("")); ok {
		a.restore(s)
	}
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runLayout() {
	if len(a.project.Words) == 0 {
		dialog.ShowInformation("Nothing to lay out", "Add or import at least one word first.", a.window)
		return
	}

	result, err := engine.Layout(a.project.Words, a.project.Settings)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.pushHistory("Lay Out")
	a.project.Result = &result
	a.refreshResults()
	a.refreshStatus()
	if a.tabs != nil {
		a.tabs.SelectIndex(2)
	}
}

func (a *App) showRandomDialog() {
	countEntry := widget.NewEntry()
	countEntry.SetText("100")
	minEntry := widget.NewEntry()
	minEntry.SetText("20x10")
	maxEntry := widget.NewEntry()
	maxEntry.SetText("120x40")
	seedEntry := widget.NewEntry()
	seedEntry.SetText("42")

	form := dialog.NewForm("Random Cloud", "Generate", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Words", countEntry),
			widget.NewFormItem("Smallest (WxH)", minEntry),
			widget.NewFormItem("Largest (WxH)", maxEntry),
			widget.NewFormItem("Seed", seedEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			n, err := strconv.Atoi(strings.TrimSpace(countEntry.Text))
			if err != nil || n <= 0 {
				dialog.ShowError(errors.New("word count must be greater than 0"), a.window)
				return
			}
			minSize, err := model.ParseSize(minEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			maxSize, err := model.ParseSize(maxEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			seed, err := strconv.ParseInt(strings.TrimSpace(seedEntry.Text), 10, 64)
			if err != nil {
				dialog.ShowError(errors.New("seed must be a whole number"), a.window)
				return
			}

			a.pushHistory("Random Cloud")
			a.project.Words = engine.RandomWords(n, minSize, maxSize, seed)
			a.refreshWordsList()
			a.runLayout()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showCompareDialog() {
	if len(a.project.Words) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add or import at least one word first.", a.window)
		return
	}

	results, err := engine.CompareScenarios(context.Background(), engine.BuildDefaultScenarios(a.project.Settings), a.project.Words)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	bold := fyne.TextStyle{Bold: true}
	grid := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Box", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Circularity", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Fill", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)

	var d dialog.Dialog
	for _, r := range results {
		res := r
		if res.Err != nil {
			grid.Add(widget.NewLabel(res.Scenario.Name))
			grid.Add(widget.NewLabel(res.Err.Error()))
			grid.Add(widget.NewLabel("-"))
			grid.Add(widget.NewLabel("-"))
			grid.Add(widget.NewLabel(""))
			continue
		}
		grid.Add(widget.NewLabel(res.Scenario.Name))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d × %d", res.BoundingBox.Size.Width, res.BoundingBox.Size.Height)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.3f", res.Circularity)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.1f%%", res.FillRatio*100)))
		grid.Add(widget.NewButton("Use", func() {
			a.pushHistory("Use " + res.Scenario.Name)
			a.project.Settings = res.Scenario.Settings
			result := res.Result
			a.project.Result = &result
			a.refreshAll()
			d.Hide()
		}))
	}

	d = dialog.NewCustom("Compare Scenarios", "Close", container.NewVScroll(grid), a.window)
	d.Resize(fyne.NewSize(700, 300))
	d.Show()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if err := project.SaveProject(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberProject(path)
	}, a.window)
	d.SetFileName(a.project.Name + project.FileExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		a.openProject(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openProject(path string) {
	proj, err := project.LoadProject(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.history.Clear()
	a.project = proj
	a.rememberProject(path)
	a.refreshAll()
}

// rememberProject adds path to the recent list and persists the config.
func (a *App) rememberProject(path string) {
	project.AddRecentProject(&a.config, path)
	if err := a.saveConfig(); err != nil {
		fyne.LogError("saving config", err)
	}
	a.SetupMenus()
}

func (a *App) exportAs(f export.Format) {
	if a.project.Result == nil || len(a.project.Result.Placements) == 0 {
		dialog.ShowInformation("No cloud", "Lay out the words before exporting.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		opts := export.Options{
			Settings: a.project.Settings,
			Render:   export.RenderOptionsFromConfig(a.config),
		}
		if err := export.Write(f, path, *a.project.Result, opts); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(f.FileName(a.project.Name))
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importWords() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		a.handleImportResult(wordimporter.ImportFile(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result wordimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		fyne.LogError("import warning: "+w, nil)
	}

	if len(result.Words) > 0 {
		a.pushHistory("Import Words")
		a.project.Words = append(a.project.Words, result.Words...)
		a.refreshWordsList()
		a.refreshStatus()

		msg := fmt.Sprintf("Successfully imported %d words.", len(result.Words))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
