// Package source loads mission plans from files.
//
// Two formats are supported, selected by file extension:
//   - .json: the wire format written by [plan.WritePlan]
//   - .toml: the authoring format of the workspace app
//
// [Load] picks the loader for a path and reads the plan. Custom loaders can
// be added by implementing [Loader] and passing them to [Detect].
package source

import (
	"path/filepath"
	"strings"

	"github.com/planboard/planboard/pkg/errors"
	"github.com/planboard/planboard/pkg/plan"
)

// Loader parses one mission file format.
type Loader interface {
	// Format returns a short name for the format, e.g. "json".
	Format() string

	// Supports reports whether this loader handles the given file name.
	Supports(filename string) bool

	// Load reads and parses the file at path.
	Load(path string) (plan.Plan, error)
}

// DefaultLoaders returns the loaders for the built-in mission formats.
func DefaultLoaders() []Loader {
	return []Loader{&JSONLoader{}, &TOMLLoader{}}
}

// Detect returns the first loader that supports the file name.
func Detect(path string, loaders ...Loader) (Loader, error) {
	name := filepath.Base(path)
	for _, l := range loaders {
		if l.Supports(name) {
			return l, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported,
		"no loader for %q (supported: .json, .toml)", name)
}

// Load reads a mission plan, selecting the loader by file extension.
// A mission file without a name inherits the file's base name.
func Load(path string) (plan.Plan, error) {
	l, err := Detect(path, DefaultLoaders()...)
	if err != nil {
		return plan.Plan{}, err
	}
	p, err := l.Load(path)
	if err != nil {
		return plan.Plan{}, err
	}
	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// JSONLoader parses .json mission files in the plan wire format.
type JSONLoader struct{}

// Format returns "json".
func (l *JSONLoader) Format() string { return "json" }

// Supports reports whether the file name has a .json extension.
func (l *JSONLoader) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

// Load reads and parses the JSON file at path.
func (l *JSONLoader) Load(path string) (plan.Plan, error) {
	return plan.ReadPlanFile(path)
}
