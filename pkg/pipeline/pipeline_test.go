package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/planboard/planboard/pkg/cache"
	"github.com/planboard/planboard/pkg/plan"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"dot", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"light", false},
		{"dark", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"board", false},
		{"nodelink", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	// Missing path
	opts := Options{}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Missing path should fail")
	}

	// Valid
	opts = Options{Path: "release.json"}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}
}

func TestOptionsIsBoard(t *testing.T) {
	opts := Options{}
	if !opts.IsBoard() {
		t.Error("Empty VizType should be board")
	}

	opts.VizType = "board"
	if !opts.IsBoard() {
		t.Error("board VizType should be board")
	}

	opts.VizType = "nodelink"
	if opts.IsBoard() {
		t.Error("nodelink VizType should not be board")
	}
}

func TestOptionsIsNodelink(t *testing.T) {
	opts := Options{}
	if opts.IsNodelink() {
		t.Error("Empty VizType should not be nodelink")
	}

	opts.VizType = "nodelink"
	if !opts.IsNodelink() {
		t.Error("nodelink VizType should be nodelink")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Path: "release.json"}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalVizType := opts.VizType
	originalStyle := opts.Style
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.VizType != originalVizType {
		t.Error("VizType changed on second call")
	}
	if opts.Style != originalStyle {
		t.Error("Style changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.VizType != DefaultVizType {
		t.Errorf("VizType should be %s, got %s", DefaultVizType, opts.VizType)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
}

func TestValidateForRenderBoardRejectsGraphvizFormats(t *testing.T) {
	opts := Options{Formats: []string{"dot"}}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("dot format on a board should fail")
	}

	opts = Options{Formats: []string{"png"}}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("png format on a board should fail")
	}

	opts = Options{VizType: VizTypeNodelink, Formats: []string{"dot"}}
	if err := opts.ValidateForRender(); err != nil {
		t.Errorf("dot format on a nodelink should pass: %v", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{
		VizType:   VizTypeBoard,
		Style:     "dark",
		HideEdges: true,
		Detailed:  true,
	}

	keyOpts := opts.ArtifactKeyOpts("svg")
	if keyOpts.Format != "svg" {
		t.Errorf("Format should be svg, got %s", keyOpts.Format)
	}
	if keyOpts.Style != "dark" {
		t.Errorf("Style should be dark, got %s", keyOpts.Style)
	}
	if keyOpts.VizType != VizTypeBoard {
		t.Errorf("VizType should be board, got %s", keyOpts.VizType)
	}
	if !keyOpts.HideEdges || !keyOpts.Detailed {
		t.Error("Flags should carry into key opts")
	}
}

// =============================================================================
// Runner Tests
// =============================================================================

const missionJSON = `{
  "name": "release",
  "steps": [
    {"id": "ship", "title": "Ship it", "status": "active", "children": ["build", "test"]},
    {"id": "build", "status": "done"},
    {"id": "test", "dependencies": ["build"]}
  ]
}`

func writeMissionFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.json")
	if err := os.WriteFile(path, []byte(missionJSON), 0644); err != nil {
		t.Fatalf("write mission file: %v", err)
	}
	return path
}

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestRunnerExecute(t *testing.T) {
	runner := quietRunner(nil)
	opts := Options{
		Path:    writeMissionFile(t),
		Formats: []string{"svg", "json"},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Plan.Name != "release" {
		t.Errorf("Plan name should be release, got %s", result.Plan.Name)
	}
	if result.Stats.StepCount != 3 {
		t.Errorf("StepCount should be 3, got %d", result.Stats.StepCount)
	}
	if result.Stats.RowCount != 3 {
		t.Errorf("RowCount should be 3, got %d", result.Stats.RowCount)
	}
	if result.PlanHash == "" {
		t.Error("PlanHash should be set")
	}

	svg := string(result.Artifacts["svg"])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("svg artifact should start with <svg, got %q", svg[:min(len(svg), 20)])
	}
	if !strings.Contains(svg, "block-ship") {
		t.Error("svg artifact should contain the ship block")
	}

	l, err := plan.UnmarshalLayout(result.Artifacts["json"])
	if err != nil {
		t.Fatalf("json artifact should be a layout: %v", err)
	}
	if len(l.Blocks) != 3 {
		t.Errorf("json layout should have 3 blocks, got %d", len(l.Blocks))
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	runner := quietRunner(nil)

	if _, err := runner.Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute without path should fail")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("create file cache: %v", err)
	}
	runner := quietRunner(c)
	path := writeMissionFile(t)

	// First run populates the cache
	result, err := runner.Execute(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatalf("First execute failed: %v", err)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("First run should not hit the cache")
	}

	// Second run should hit for both layout and render
	result, err = runner.Execute(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatalf("Second execute failed: %v", err)
	}
	if !result.CacheInfo.LayoutHit {
		t.Error("Second run should hit the layout cache")
	}
	if !result.CacheInfo.RenderHit {
		t.Error("Second run should hit the render cache")
	}

	// Refresh bypasses cache reads
	result, err = runner.Execute(context.Background(), Options{Path: path, Refresh: true})
	if err != nil {
		t.Fatalf("Refresh execute failed: %v", err)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("Refresh run should not hit the cache")
	}
}

func TestRunnerLoadUnsupportedFormat(t *testing.T) {
	runner := quietRunner(nil)
	path := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(path, []byte("steps: []"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := runner.Load(context.Background(), Options{Path: path}); err == nil {
		t.Error("Loading a yaml file should fail")
	}
}

func TestRenderUnsupportedBoardFormat(t *testing.T) {
	p, err := plan.UnmarshalPlan([]byte(missionJSON))
	if err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	l := plan.FromResult(p, p.Compute())

	opts := Options{VizType: VizTypeBoard, Formats: []string{"dot"}, Style: "light"}
	if _, err := Render(l, p, opts); err == nil {
		t.Error("dot is not a board format and should fail")
	}
}

func TestRenderNodelinkDOT(t *testing.T) {
	p, err := plan.UnmarshalPlan([]byte(missionJSON))
	if err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	l := plan.FromResult(p, p.Compute())

	opts := Options{VizType: VizTypeNodelink, Formats: []string{"dot"}, Style: "light"}
	artifacts, err := Render(l, p, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	dot := string(artifacts["dot"])
	if !strings.Contains(dot, "digraph mission") {
		t.Error("dot artifact should contain the digraph header")
	}
	if !strings.Contains(dot, `"ship" -> "build"`) {
		t.Error("dot artifact should contain the ship -> build edge")
	}
}
