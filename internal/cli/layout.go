package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/engine"
	"github.com/piwi3910/tagcloud/internal/export"
	"github.com/piwi3910/tagcloud/internal/importer"
	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
)

const (
	defaultMinSize = "20x10"
	defaultMaxSize = "120x40"
	defaultSeed    = 42
)

// wordOpts selects where the words come from.
type wordOpts struct {
	random  int    // number of random words; 0 reads the file argument
	minSize string // smallest random word, "WxH"
	maxSize string // largest random word, "WxH"
	seed    int64
}

// settingsOpts holds flags that override the configured layout settings.
type settingsOpts struct {
	preset         string
	center         string // "X,Y"
	angleDivisions int
	distanceStep   int
	maxRadius      int
	largestFirst   bool
}

type layoutOpts struct {
	words    wordOpts
	settings settingsOpts
	formats  string
	output   string // output directory
	name     string // base file name
	project  string // optional project file to save
	labels   bool
	fill     bool
}

func newLayoutCmd() *cobra.Command {
	opts := layoutOpts{formats: "png", output: ".", name: "cloud"}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Lay out a word list and export the cloud",
		Long: `Lay out the words from a CSV, XLSX, TOML, YAML, DXF or .tagcloud project file
(or --random words) and write the cloud in the requested formats.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, args, opts)
		},
	}

	addWordFlags(cmd, &opts.words)
	addSettingsFlags(cmd, &opts.settings)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: png,pdf,labels,dxf,xlsx,json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVar(&opts.name, "name", opts.name, "base name of the output files")
	cmd.Flags().StringVar(&opts.project, "project", "", "also save the layout as a project file")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw word labels in the PNG")
	cmd.Flags().BoolVar(&opts.fill, "fill", false, "fill rectangles in the PNG")

	return cmd
}

func addWordFlags(cmd *cobra.Command, o *wordOpts) {
	o.minSize, o.maxSize, o.seed = defaultMinSize, defaultMaxSize, defaultSeed
	cmd.Flags().IntVar(&o.random, "random", 0, "lay out N random words instead of reading a file")
	cmd.Flags().StringVar(&o.minSize, "min", o.minSize, "smallest random word (WxH)")
	cmd.Flags().StringVar(&o.maxSize, "max", o.maxSize, "largest random word (WxH)")
	cmd.Flags().Int64Var(&o.seed, "seed", o.seed, "random seed")
}

func addSettingsFlags(cmd *cobra.Command, o *settingsOpts) {
	cmd.Flags().StringVar(&o.preset, "preset", "", "start from a saved preset")
	cmd.Flags().StringVar(&o.center, "center", "", "cloud centre as X,Y")
	cmd.Flags().IntVar(&o.angleDivisions, "angle-divisions", 0, "spiral angle step as a fraction of pi (step = pi/N)")
	cmd.Flags().IntVar(&o.distanceStep, "distance-step", 0, "radial growth per spiral sample")
	cmd.Flags().IntVar(&o.maxRadius, "max-radius", 0, "give up beyond this spiral radius (0 = unbounded)")
	cmd.Flags().BoolVar(&o.largestFirst, "largest-first", false, "place larger words first")
}

func runLayout(cmd *cobra.Command, args []string, opts layoutOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	env := envFromContext(ctx)
	out := cmd.OutOrStdout()

	formats, err := export.ParseFormats(opts.formats)
	if err != nil {
		return err
	}

	words, base, err := loadWords(args, opts.words, env, logger)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, base, opts.settings, env)
	if err != nil {
		return err
	}
	logger.Debug("layout settings", "center", settings.Center, "angle_step", settings.AngleStep,
		"distance_step", settings.DistanceStep, "max_radius", settings.MaxRadius)

	prog := newProgress(logger)
	result, err := engine.Layout(words, settings)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d words", len(result.Placements)))

	printLayoutSummary(out, result)
	for _, w := range result.Skipped {
		printWarning(out, "skipped %q: size %s is not positive", w.Label, w.Size)
	}

	render := export.RenderOptionsFromConfig(env.config)
	render.Labels = render.Labels || opts.labels
	render.Fill = render.Fill || opts.fill

	if err := os.MkdirAll(opts.output, 0755); err != nil {
		return err
	}
	written, err := export.WriteAll(opts.output, opts.name, formats, result,
		export.Options{Settings: settings, Render: render})
	for _, path := range written {
		printFile(out, path)
	}
	if err != nil {
		return err
	}

	if opts.project != "" {
		if err := saveLayoutProject(opts.project, opts.name, words, settings, result, env); err != nil {
			return err
		}
		printFile(out, opts.project)
	}

	printSuccess(out, "Layout complete")
	return nil
}

// loadWords returns the words to lay out and the settings they start from.
// Project files carry their own settings; everything else starts from the
// configured defaults.
func loadWords(args []string, o wordOpts, env appEnv, logger *log.Logger) ([]model.Word, model.LayoutSettings, error) {
	base := env.settings()

	if o.random > 0 {
		minSize, err := model.ParseSize(o.minSize)
		if err != nil {
			return nil, base, fmt.Errorf("--min: %w", err)
		}
		maxSize, err := model.ParseSize(o.maxSize)
		if err != nil {
			return nil, base, fmt.Errorf("--max: %w", err)
		}
		logger.Debug("generating random words", "n", o.random, "min", minSize, "max", maxSize, "seed", o.seed)
		return engine.RandomWords(o.random, minSize, maxSize, o.seed), base, nil
	}

	if len(args) == 0 {
		return nil, base, errors.New("a word list file or --random N is required")
	}
	path := args[0]

	if strings.EqualFold(filepath.Ext(path), project.FileExtension) {
		proj, err := project.LoadProject(path)
		if err != nil {
			return nil, base, err
		}
		logger.Info("loaded project", "name", proj.Name, "words", len(proj.Words))
		return proj.Words, proj.Settings, nil
	}

	imported := importer.ImportFile(path)
	for _, w := range imported.Warnings {
		logger.Warn(w)
	}
	for _, e := range imported.Errors {
		logger.Error(e)
	}
	if len(imported.Words) == 0 {
		return nil, base, fmt.Errorf("no words imported from %s", path)
	}
	logger.Info("imported words", "file", path, "words", len(imported.Words))
	return imported.Words, base, nil
}

// resolveSettings applies a preset and then every flag the user set on top
// of base.
func resolveSettings(cmd *cobra.Command, base model.LayoutSettings, o settingsOpts, env appEnv) (model.LayoutSettings, error) {
	settings := base
	if o.preset != "" {
		presets, err := project.LoadPresets(env.presetsPath())
		if err != nil {
			return settings, fmt.Errorf("loading presets: %w", err)
		}
		p, ok := project.FindPreset(presets, o.preset)
		if !ok {
			return settings, fmt.Errorf("preset %q not found", o.preset)
		}
		settings = p.Settings
	}

	flags := cmd.Flags()
	if flags.Changed("center") {
		c, err := parsePoint(o.center)
		if err != nil {
			return settings, fmt.Errorf("--center: %w", err)
		}
		settings.Center = c
	}
	if flags.Changed("angle-divisions") {
		if o.angleDivisions <= 0 {
			return settings, errors.New("--angle-divisions must be positive")
		}
		settings.AngleStep = math.Pi / float64(o.angleDivisions)
	}
	if flags.Changed("distance-step") {
		settings.DistanceStep = o.distanceStep
	}
	if flags.Changed("max-radius") {
		settings.MaxRadius = o.maxRadius
	}
	if flags.Changed("largest-first") {
		settings.SortLargestFirst = o.largestFirst
	}
	return settings, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (model.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Point{}, fmt.Errorf("invalid point %q, expected X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid y in %q", s)
	}
	return model.Point{X: x, Y: y}, nil
}

func saveLayoutProject(path, name string, words []model.Word, settings model.LayoutSettings, result model.LayoutResult, env appEnv) error {
	proj := model.Project{Name: name, Words: words, Settings: settings, Result: &result}
	if err := project.SaveProject(path, proj); err != nil {
		return err
	}
	project.AddRecentProject(&env.config, path)
	return project.SaveAppConfig(env.configPath, env.config)
}

// printLayoutSummary prints the cloud's metrics as a table.
func printLayoutSummary(w io.Writer, result model.LayoutResult) {
	box := result.BoundingBox()
	rows := [][]string{
		{"Words placed", strconv.Itoa(len(result.Placements))},
		{"Skipped", strconv.Itoa(len(result.Skipped))},
		{"Center", result.Center.String()},
		{"Bounding box", box.String()},
		{"Used area", strconv.Itoa(result.UsedArea())},
		{"Circularity", fmt.Sprintf("%.3f", result.Circularity())},
		{"Fill ratio", fmt.Sprintf("%.3f", result.FillRatio())},
	}
	fmt.Fprintln(w, StyleTitle.Render("Cloud layout"))
	fmt.Fprintln(w, renderTable([]string{"Metric", "Value"}, rows))
}
