package render

import (
	"strings"
	"testing"

	"github.com/planboard/planboard/pkg/plan"
)

func boardFixture() plan.Layout {
	p := plan.Plan{
		Name: "release",
		Steps: []plan.Step{
			{ID: "ship", Title: "Ship it", Status: "active", Children: []string{"build", "test"}},
			{ID: "build", Status: "done"},
			{ID: "test", Dependencies: []string{"build"}},
		},
	}
	return plan.FromResult(p, p.Compute())
}

func TestRenderSVG_Document(t *testing.T) {
	l := boardFixture()
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output should start with an svg element, got %q", svg[:40])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output should end with a closing svg tag")
	}

	// One box and one title per step
	for _, id := range []string{"ship", "build", "test"} {
		if !strings.Contains(svg, `id="block-`+id+`"`) {
			t.Errorf("missing block for step %q", id)
		}
	}
	if !strings.Contains(svg, ">Ship it</text>") {
		t.Error("missing title text for step ship")
	}
}

func TestRenderSVG_EdgeKinds(t *testing.T) {
	l := boardFixture()
	svg := string(RenderSVG(l))

	lines := strings.Count(svg, "<line ")
	if lines != 3 {
		t.Fatalf("line count = %d, want 3 (two containment, one dependency)", lines)
	}

	dashed := strings.Count(svg, `stroke-dasharray`)
	if dashed != 1 {
		t.Errorf("dashed line count = %d, want 1 (the dependency)", dashed)
	}
}

func TestRenderSVG_WithoutEdges(t *testing.T) {
	l := boardFixture()
	svg := string(RenderSVG(l, WithoutEdges()))

	if strings.Contains(svg, "<line ") {
		t.Error("WithoutEdges() should omit relation lines")
	}
}

func TestRenderSVG_Styles(t *testing.T) {
	l := boardFixture()

	light := string(RenderSVG(l))
	if !strings.Contains(light, `fill="#ffffff"`) {
		t.Error("light style should fill the canvas white")
	}
	// "done" status gets the green fill
	if !strings.Contains(light, `fill="#dcfce7"`) {
		t.Error("light style should color done steps green")
	}

	dark := string(RenderSVG(l, WithStyle(NewDark())))
	if !strings.Contains(dark, `fill="#0f172a"`) {
		t.Error("dark style should fill the canvas slate")
	}
}

func TestRenderSVG_Empty(t *testing.T) {
	svg := string(RenderSVG(plan.Layout{}))

	if !strings.HasPrefix(svg, "<svg ") {
		t.Error("empty layout should still produce an svg element")
	}
	if strings.Contains(svg, "<rect id=") || strings.Contains(svg, "<line ") {
		t.Error("empty layout should render no blocks or lines")
	}
}

func TestRenderSVG_Deterministic(t *testing.T) {
	l := boardFixture()
	a := RenderSVG(l)
	b := RenderSVG(l)
	if string(a) != string(b) {
		t.Error("RenderSVG should be deterministic")
	}
}

func TestRenderSVG_UnknownEdgeEndpointSkipped(t *testing.T) {
	l := boardFixture()
	l.Edges = append(l.Edges, plan.Edge{From: "ship", To: "ghost", Kind: plan.EdgeKindChild})

	svg := string(RenderSVG(l))
	if got := strings.Count(svg, "<line "); got != 3 {
		t.Errorf("line count = %d, want 3 (edge to unknown block skipped)", got)
	}
}

func TestStyleByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"", "light", false},
		{"light", "light", false},
		{"dark", "dark", false},
		{"neon", "", true},
	}

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			s, err := StyleByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("StyleByName() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("StyleByName() unexpected error: %v", err)
			}
			if s.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.wantName)
			}
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	wide := Block{Label: "Short title", W: 260}
	if got := TruncateLabel(wide); got != "Short title" {
		t.Errorf("TruncateLabel() = %q, want unchanged label", got)
	}

	long := Block{Label: strings.Repeat("x", 80), W: 260}
	got := TruncateLabel(long)
	if len(got) >= 80 {
		t.Errorf("TruncateLabel() should shorten a long label, got %d chars", len(got))
	}
	if !strings.HasSuffix(got, "..") {
		t.Errorf("TruncateLabel() = %q, want .. suffix", got)
	}

	// Narrow blocks keep at least a 3-character label
	tiny := Block{Label: "abcdefgh", W: 10}
	if got := TruncateLabel(tiny); len(got) != 3 {
		t.Errorf("TruncateLabel() on narrow block = %q, want 3 chars", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b>&"c"`); strings.ContainsAny(got, `<>`) {
		t.Errorf("EscapeXML() left markup characters: %q", got)
	}
}
