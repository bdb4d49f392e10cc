package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/planboard/planboard/pkg/plan"
)

// TOMLLoader parses .toml mission files.
//
// The authoring format uses one [[step]] table per step:
//
//	name = "onboarding"
//
//	[[step]]
//	id = "kickoff"
//	title = "Kickoff call"
//	status = "done"
//
//	[[step]]
//	id = "accounts"
//	children = ["email", "sso"]
//	dependencies = ["kickoff"]
type TOMLLoader struct{}

// Format returns "toml".
func (l *TOMLLoader) Format() string { return "toml" }

// Supports reports whether the file name has a .toml extension.
func (l *TOMLLoader) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

// Load reads and parses the TOML file at path.
func (l *TOMLLoader) Load(path string) (plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan.Plan{}, err
	}

	var doc tomlPlan
	if err := toml.Unmarshal(data, &doc); err != nil {
		return plan.Plan{}, fmt.Errorf("parse %s: %w", path, err)
	}

	p := plan.Plan{
		Name:  doc.Name,
		Steps: make([]plan.Step, len(doc.Steps)),
	}
	for i, s := range doc.Steps {
		p.Steps[i] = plan.Step{
			ID:           s.ID,
			Title:        s.Title,
			Status:       s.Status,
			Children:     s.Children,
			Dependencies: s.Dependencies,
		}
	}

	return p, nil
}

type tomlPlan struct {
	Name  string     `toml:"name"`
	Steps []tomlStep `toml:"step"`
}

type tomlStep struct {
	ID           string   `toml:"id"`
	Title        string   `toml:"title"`
	Status       string   `toml:"status"`
	Children     []string `toml:"children"`
	Dependencies []string `toml:"dependencies"`
}
