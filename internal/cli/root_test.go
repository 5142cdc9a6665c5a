package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("SetVersion did not store values: %q %q %q", version, commit, date)
	}
}

// runCLI executes the root command with an isolated config file and returns
// its standard output.
func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", filepath.Join(configDir, "config.json")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutCommand_RandomWords(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	out, err := runCLI(t, dir, "layout", "--random", "25", "--seed", "7",
		"--format", "png,json", "-o", outDir, "--name", "demo")
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	if !strings.Contains(out, "Words placed") || !strings.Contains(out, "25") {
		t.Errorf("summary missing from output:\n%s", out)
	}

	for _, name := range []string{"demo.png", "demo.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "demo.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc model.LayoutResult
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(doc.Placements) != 25 {
		t.Errorf("expected 25 placements, got %d", len(doc.Placements))
	}
}

func TestLayoutCommand_FileAndProject(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.csv")
	if err := os.WriteFile(words, []byte("label,width,height\ngo,60,20\nrust,50,20\nzig,30,15\n"), 0644); err != nil {
		t.Fatal(err)
	}
	projPath := filepath.Join(dir, "cloud"+project.FileExtension)

	if _, err := runCLI(t, dir, "layout", words, "--format", "json", "-o", dir,
		"--center", "100,50", "--project", projPath); err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	proj, err := project.LoadProject(projPath)
	if err != nil {
		t.Fatalf("project not saved: %v", err)
	}
	if len(proj.Words) != 3 || proj.Result == nil {
		t.Fatalf("unexpected project %+v", proj)
	}
	if proj.Settings.Center != (model.Point{X: 100, Y: 50}) {
		t.Errorf("center = %v", proj.Settings.Center)
	}
	if got := proj.Result.Placements[0].Rect; got != model.Rect(70, 40, 60, 20) {
		t.Errorf("first word = %v, want centred on (100,50)", got)
	}

	cfg, err := project.LoadAppConfig(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.RecentProjects) != 1 || cfg.RecentProjects[0] != projPath {
		t.Errorf("recent projects = %v", cfg.RecentProjects)
	}

	// A saved project can be laid out again with its own settings.
	if _, err := runCLI(t, dir, "layout", projPath, "--format", "json", "-o", dir, "--name", "again"); err != nil {
		t.Fatalf("layout from project failed: %v", err)
	}
}

func TestLayoutCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "layout"); err == nil {
		t.Error("expected error without file or --random")
	}
	if _, err := runCLI(t, dir, "layout", "--random", "3", "--format", "gif"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := runCLI(t, dir, "layout", "--random", "3", "--min", "ten"); err == nil {
		t.Error("expected error for bad --min")
	}
	if _, err := runCLI(t, dir, "layout", "--random", "3", "--preset", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "compare", "--random", "20")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	for _, want := range []string{"Scenario comparison", "Current Settings", "Circularity"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPresetCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "preset", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no presets") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := runCLI(t, dir, "preset", "save", "wide", "--max-radius", "400", "--largest-first"); err != nil {
		t.Fatalf("preset save failed: %v", err)
	}

	presets, err := project.LoadPresets(filepath.Join(dir, "presets.json"))
	if err != nil {
		t.Fatal(err)
	}
	p, ok := project.FindPreset(presets, "wide")
	if !ok {
		t.Fatalf("preset not saved: %+v", presets)
	}
	if p.Settings.MaxRadius != 400 || !p.Settings.SortLargestFirst {
		t.Errorf("unexpected preset settings %+v", p.Settings)
	}

	out, err = runCLI(t, dir, "preset", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "wide") {
		t.Errorf("preset missing from list:\n%s", out)
	}

	if _, err := runCLI(t, dir, "layout", "--random", "5", "--preset", "wide", "--format", "json", "-o", dir); err != nil {
		t.Errorf("layout with preset failed: %v", err)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Point
		wantErr bool
	}{
		{"0,0", model.Point{}, false},
		{"100, -50", model.Point{X: 100, Y: -50}, false},
		{"1", model.Point{}, true},
		{"a,2", model.Point{}, true},
		{"1,b", model.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnvFromContextDefaults(t *testing.T) {
	env := envFromContext(context.Background())
	got, want := env.settings(), model.DefaultSettings()
	if got.DistanceStep != want.DistanceStep || got.MaxRadius != want.MaxRadius || got.IndexCellSize != want.IndexCellSize {
		t.Errorf("default env settings = %+v", got)
	}
	if math.Abs(got.AngleStep-want.AngleStep) > 1e-12 {
		t.Errorf("angle step = %v, want %v", got.AngleStep, want.AngleStep)
	}
	if filepath.Base(env.presetsPath()) != "presets.json" {
		t.Errorf("presets path = %s", env.presetsPath())
	}
}
