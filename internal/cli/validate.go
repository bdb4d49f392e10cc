package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planboard/planboard/pkg/plan"
	"github.com/planboard/planboard/pkg/source"
)

// validateCommand creates the validate command for checking mission plans.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [mission.json|mission.toml]",
		Short: "Check a mission plan for authoring mistakes",
		Long: `Check a mission plan for authoring mistakes.

Validation reports duplicate or empty step ids, references to unknown
steps, self-references, and containment cycles. The layout engine tolerates
all of these, so the findings are warnings about intent rather than layout
failures; the command still exits non-zero so CI pipelines can catch them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

// runValidate loads the plan and reports validation findings.
func (c *CLI) runValidate(input string) error {
	p, err := source.Load(input)
	if err != nil {
		return fmt.Errorf("load mission %s: %w", input, err)
	}

	issues := p.Validate()
	if len(issues) == 0 {
		printSuccess("%s is valid", p.Name)
		printDetail("%d steps", len(p.Steps))
		return nil
	}

	for _, issue := range issues {
		printWarning("%s", issue)
	}
	return fmt.Errorf("%s: %d validation issue(s)", p.Name, len(issues))
}

// warnIssues prints validation findings without failing the command.
// Commands that compute layouts call this so authoring mistakes surface even
// though the engine tolerates them.
func warnIssues(p plan.Plan) {
	for _, issue := range p.Validate() {
		printWarning("%s", issue)
	}
}
