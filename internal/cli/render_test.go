package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input extension", "", "release.json", "release"},
		{"empty output with toml input", "", "plans/onboarding.toml", "plans/onboarding"},
		{"output with format extension", "board.svg", "release.json", "board"},
		{"output with png extension", "out.png", "release.json", "out"},
		{"output without format extension", "boards/release", "release.json", "boards/release"},
		{"output with unrelated extension", "report.txt", "release.json", "report.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		format string
		want   string
	}{
		{"svg", "release", "svg", "release.svg"},
		{"dot", "release", "dot", "release.dot"},
		{"json gets layout suffix", "release", "json", "release.layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath(tt.base, tt.format)
			if got != tt.want {
				t.Errorf("artifactPath(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsDerivedPaths(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "release.json")

	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	paths, err := writeArtifacts(artifacts, []string{"svg", "json"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "release.svg"),
		filepath.Join(dir, "release.layout.json"),
	}
	if len(paths) != len(want) {
		t.Fatalf("writeArtifacts() returned %d paths, want %d", len(paths), len(want))
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "board.svg")

	artifacts := map[string][]byte{"svg": []byte("<svg/>")}

	paths, err := writeArtifacts(artifacts, []string{"svg"}, "release.json", out)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Fatalf("writeArtifacts() paths = %v, want [%s]", paths, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output content = %q, want %q", data, "<svg/>")
	}
}

func TestWriteArtifactsJSONNeverOverwritesInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "release.json")
	if err := os.WriteFile(input, []byte(`{"name":"release"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	artifacts := map[string][]byte{"json": []byte("{}")}
	paths, err := writeArtifacts(artifacts, []string{"json"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, p := range paths {
		if p == input {
			t.Fatalf("writeArtifacts() wrote to the input path %s", input)
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"release"}` {
		t.Error("input mission file was modified")
	}
}
