package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planboard/planboard/pkg/plan"
)

func boardFixture() (plan.Plan, plan.Layout) {
	p := plan.Plan{
		Name: "release",
		Steps: []plan.Step{
			{ID: "ship", Title: "Ship it", Status: "active", Children: []string{"build", "test"}},
			{ID: "build", Status: "done"},
			{ID: "test", Dependencies: []string{"build"}},
		},
	}
	return p, plan.FromResult(p, p.Compute())
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestNewBoardModelFlattensRows(t *testing.T) {
	p, l := boardFixture()
	m := NewBoardModel(p, l)

	if len(m.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.Entries))
	}

	// Rows go top to bottom: ship contains build and test, test depends on
	// build, so the order is ship, build, test.
	wantOrder := []string{"ship", "build", "test"}
	for i, want := range wantOrder {
		if m.Entries[i].step.ID != want {
			t.Errorf("entries[%d].step.ID = %q, want %q", i, m.Entries[i].step.ID, want)
		}
		if m.Entries[i].row != i {
			t.Errorf("entries[%d].row = %d, want %d", i, m.Entries[i].row, i)
		}
	}
}

func TestBoardModelNavigation(t *testing.T) {
	p, l := boardFixture()
	m := NewBoardModel(p, l)

	next, _ := m.Update(keyMsg("j"))
	m = next.(BoardModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("j"))
	next, _ = next.(BoardModel).Update(keyMsg("j")) // clamped at the last entry
	m = next.(BoardModel)
	if m.Cursor != 2 {
		t.Errorf("cursor after repeated j = %d, want 2", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(BoardModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after k = %d, want 1", m.Cursor)
	}
}

func TestBoardModelQuit(t *testing.T) {
	p, l := boardFixture()
	m := NewBoardModel(p, l)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("q should produce a quit command")
	}
}

func TestBoardModelView(t *testing.T) {
	p, l := boardFixture()
	m := NewBoardModel(p, l)

	view := m.View()
	if !strings.Contains(view, "release") {
		t.Error("view should contain the mission name")
	}
	if !strings.Contains(view, "Ship it") {
		t.Error("view should contain step titles")
	}
	if !strings.Contains(view, "[1/3]") {
		t.Error("view should contain the cursor position")
	}
}

func TestBoardModelViewEmpty(t *testing.T) {
	m := NewBoardModel(plan.Plan{}, plan.Layout{})
	view := m.View()
	if !strings.Contains(view, "empty board") {
		t.Error("view should mention the empty board")
	}
}

func TestStatusLabel(t *testing.T) {
	if statusLabel("") != "pending" {
		t.Errorf("statusLabel(\"\") = %q, want %q", statusLabel(""), "pending")
	}
	if statusLabel("done") != "done" {
		t.Errorf("statusLabel(done) = %q, want %q", statusLabel("done"), "done")
	}
}
