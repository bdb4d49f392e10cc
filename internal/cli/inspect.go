package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/planboard/planboard/pkg/plan"
	"github.com/planboard/planboard/pkg/source"
)

// inspectCommand creates the inspect command for browsing boards in the terminal.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [mission.json|mission.toml]",
		Short: "Browse a computed board interactively",
		Long: `Browse a computed board interactively.

The inspect command computes the layout for a mission file and opens a
terminal browser: one line per step, grouped by board row, with the step's
status, relations, and block geometry. Use the arrow keys or j/k to move
and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
}

// runInspect computes the board and hands it to the terminal browser.
func (c *CLI) runInspect(input string) error {
	p, err := source.Load(input)
	if err != nil {
		return fmt.Errorf("load mission %s: %w", input, err)
	}
	warnIssues(p)

	l := plan.FromResult(p, p.Compute())

	if _, err := tea.NewProgram(NewBoardModel(p, l)).Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
