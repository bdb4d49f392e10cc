package plan

import (
	"fmt"

	"github.com/planboard/planboard/pkg/layout"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Step statuses. The layout engine ignores status; renderers use it to pick
// block colors.
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusDone    = "done"
	StatusBlocked = "blocked"
)

// Issue codes reported by [Plan.Validate].
const (
	IssueEmptyID           = "empty_id"
	IssueDuplicateID       = "duplicate_id"
	IssueUnknownChild      = "unknown_child"
	IssueUnknownDependency = "unknown_dependency"
	IssueSelfReference     = "self_reference"
	IssueContainmentCycle  = "containment_cycle"
)

// =============================================================================
// Step - Mission Step
// =============================================================================

// Step is one step of a mission plan: an optionally titled unit of work that
// may decompose into children and may depend on other steps finishing first.
type Step struct {
	ID           string   `json:"id" bson:"id"`
	Title        string   `json:"title,omitempty" bson:"title,omitempty"`   // Display title (defaults to ID)
	Status       string   `json:"status,omitempty" bson:"status,omitempty"` // "pending", "active", "done", "blocked", or empty
	Children     []string `json:"children,omitempty" bson:"children,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
}

// DisplayTitle returns the title if set, otherwise the ID.
func (s *Step) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// =============================================================================
// Plan - Ordered Step Collection
// =============================================================================

// Plan is the canonical serialization format for a mission plan: a named,
// ordered collection of steps. Step order is significant - the layout engine
// uses it to break ties - so Plan preserves it everywhere.
type Plan struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Steps []Step `json:"steps" bson:"steps"`
}

// Step returns the first step with the given ID and true, or a zero step and
// false if no step carries it.
func (p Plan) Step(id string) (Step, bool) {
	for _, s := range p.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

// StepIDs returns the plan's step IDs in plan order.
func (p Plan) StepIDs() []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.ID
	}
	return ids
}

// LayoutSteps converts the plan into the layout engine's input records,
// preserving plan order.
func (p Plan) LayoutSteps() []layout.Step {
	steps := make([]layout.Step, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = layout.Step{
			ID:           s.ID,
			Children:     s.Children,
			Dependencies: s.Dependencies,
		}
	}
	return steps
}

// Compute lays the plan out and returns the engine result.
func (p Plan) Compute() layout.Result {
	return layout.Compute(p.LayoutSteps())
}

// =============================================================================
// Validation
// =============================================================================

// Issue is one validation finding. Issues are advisory: the layout engine
// tolerates every condition Validate reports, but the resulting board may not
// be what the author meant.
type Issue struct {
	Code   string `json:"code"`
	StepID string `json:"step_id,omitempty"`
	Ref    string `json:"ref,omitempty"`
}

// String renders the issue as a one-line human-readable message.
func (i Issue) String() string {
	switch i.Code {
	case IssueEmptyID:
		return "step with empty id"
	case IssueDuplicateID:
		return fmt.Sprintf("duplicate step id %q", i.StepID)
	case IssueUnknownChild:
		return fmt.Sprintf("step %q references unknown child %q", i.StepID, i.Ref)
	case IssueUnknownDependency:
		return fmt.Sprintf("step %q references unknown dependency %q", i.StepID, i.Ref)
	case IssueSelfReference:
		return fmt.Sprintf("step %q references itself", i.StepID)
	case IssueContainmentCycle:
		return fmt.Sprintf("containment cycle through step %q", i.StepID)
	default:
		return fmt.Sprintf("%s (step %q)", i.Code, i.StepID)
	}
}

// Validate checks the plan for authoring mistakes and returns the findings
// in deterministic order: ID problems first, then dangling references in
// plan order, then containment cycles.
//
// Cycles are detected with a depth-first search over children using
// white/gray/black coloring; one issue is reported per step at which a cycle
// closes.
func (p Plan) Validate() []Issue {
	var issues []Issue

	known := make(map[string]bool, len(p.Steps))
	for _, s := range p.Steps {
		if s.ID == "" {
			issues = append(issues, Issue{Code: IssueEmptyID})
			continue
		}
		if known[s.ID] {
			issues = append(issues, Issue{Code: IssueDuplicateID, StepID: s.ID})
			continue
		}
		known[s.ID] = true
	}

	for _, s := range p.Steps {
		for _, c := range s.Children {
			switch {
			case c == s.ID:
				issues = append(issues, Issue{Code: IssueSelfReference, StepID: s.ID})
			case !known[c]:
				issues = append(issues, Issue{Code: IssueUnknownChild, StepID: s.ID, Ref: c})
			}
		}
		for _, d := range s.Dependencies {
			switch {
			case d == s.ID:
				issues = append(issues, Issue{Code: IssueSelfReference, StepID: s.ID})
			case !known[d]:
				issues = append(issues, Issue{Code: IssueUnknownDependency, StepID: s.ID, Ref: d})
			}
		}
	}

	issues = append(issues, p.containmentCycles(known)...)
	return issues
}

// containmentCycles finds cycles in the children relation.
func (p Plan) containmentCycles(known map[string]bool) []Issue {
	const (
		white = iota
		gray
		black
	)

	children := make(map[string][]string, len(p.Steps))
	for _, s := range p.Steps {
		if _, dup := children[s.ID]; dup {
			continue
		}
		kids := make([]string, 0, len(s.Children))
		for _, c := range s.Children {
			if known[c] {
				kids = append(kids, c)
			}
		}
		children[s.ID] = kids
	}

	color := make(map[string]int, len(p.Steps))
	var issues []Issue

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, c := range children[id] {
			switch color[c] {
			case white:
				dfs(c)
			case gray:
				issues = append(issues, Issue{Code: IssueContainmentCycle, StepID: c})
			}
		}
		color[id] = black
	}

	for _, s := range p.Steps {
		if known[s.ID] && color[s.ID] == white {
			dfs(s.ID)
		}
	}
	return issues
}
