package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/planboard/planboard/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// statusStyle returns the display style for a step status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case plan.StatusDone:
		return StyleSuccess
	case plan.StatusActive:
		return StyleHighlight
	case plan.StatusBlocked:
		return styleIconError
	default:
		return listDimStyle
	}
}

// statusLabel normalizes an empty status to "pending" for display.
func statusLabel(status string) string {
	if status == "" {
		return plan.StatusPending
	}
	return status
}

// =============================================================================
// BoardModel - Interactive board browser
// =============================================================================

// boardEntry is one cursor target: a step and the board row it sits on.
type boardEntry struct {
	row  int
	step plan.Step
}

// BoardModel is the bubbletea model for browsing a computed board.
// Steps are listed row by row, top to bottom; the detail pane below the
// table shows the cursor step's relations and block geometry.
type BoardModel struct {
	Plan    plan.Plan
	Layout  plan.Layout
	Entries []boardEntry
	Cursor  int
	Height  int
	Offset  int
}

// NewBoardModel creates a board browser for a plan and its computed layout.
func NewBoardModel(p plan.Plan, l plan.Layout) BoardModel {
	var entries []boardEntry
	for row, ids := range l.Rows {
		for _, id := range ids {
			step, ok := p.Step(id)
			if !ok {
				step = plan.Step{ID: id}
			}
			entries = append(entries, boardEntry{row: row, step: step})
		}
	}
	return BoardModel{
		Plan:    p,
		Layout:  l,
		Entries: entries,
		Height:  15,
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the header and the detail pane.
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BoardModel) View() string {
	var b strings.Builder

	name := m.Layout.Name
	if name == "" {
		name = "mission"
	}

	b.WriteString(StyleTitle.Render("Board: " + name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%.0f×%.0f · %d steps · %d rows",
		m.Layout.Width, m.Layout.Height, len(m.Entries), len(m.Layout.Rows))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		needs := "—"
		if len(e.step.Dependencies) > 0 {
			needs = strings.Join(e.step.Dependencies, ", ")
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", e.row),
			e.step.DisplayTitle(),
			statusLabel(e.step.Status),
			needs,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Row", "Step", "Status", "Needs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			e := m.Entries[actualIdx]

			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			switch col {
			case 3:
				return statusStyle(e.step.Status)
			case 1, 4:
				return listDimStyle
			default:
				return listNormalStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// detailView renders the relations and geometry of the cursor step.
func (m BoardModel) detailView() string {
	if len(m.Entries) == 0 {
		return listDimStyle.Render("  (empty board)")
	}
	e := m.Entries[m.Cursor]

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(e.step.ID))
	b.WriteString(" ")
	b.WriteString(statusStyle(e.step.Status).Render(statusLabel(e.step.Status)))
	b.WriteString("\n")

	if blk, ok := m.Layout.Block(e.step.ID); ok {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  block x=%.0f y=%.0f w=%.0f h=%.0f", blk.X, blk.Y, blk.Width, blk.Height)))
		b.WriteString("\n")
	}
	if len(e.step.Children) > 0 {
		b.WriteString(listDimStyle.Render("  contains: " + strings.Join(e.step.Children, ", ")))
		b.WriteString("\n")
	}
	if len(e.step.Dependencies) > 0 {
		b.WriteString(listDimStyle.Render("  needs: " + strings.Join(e.step.Dependencies, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
