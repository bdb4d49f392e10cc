package layout

import (
	"reflect"
	"slices"
	"testing"
)

// releasePlan is a moderately tangled mission: three phases under one plan,
// leaf dependencies pushing later steps down, and a composite dependency
// rerouted through two leaves.
func releasePlan() []Step {
	return []Step{
		{ID: "plan", Children: []string{"design", "build", "ship"}},
		{ID: "design", Children: []string{"api", "schema"}},
		{ID: "build", Children: []string{"backend", "frontend"}},
		{ID: "ship", Dependencies: []string{"build"}},
		{ID: "api"},
		{ID: "schema"},
		{ID: "backend", Dependencies: []string{"api"}},
		{ID: "frontend", Dependencies: []string{"api"}},
	}
}

func rowOf(res Result) map[string]int {
	m := make(map[string]int)
	for r, ids := range res.Rows {
		for _, id := range ids {
			m[id] = r
		}
	}
	return m
}

func TestCompute_Empty(t *testing.T) {
	for _, tt := range []struct {
		name  string
		steps []Step
	}{
		{"Nil", nil},
		{"Empty", []Step{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.steps)

			if len(res.Positions) != 0 {
				t.Errorf("positions = %d, want 0", len(res.Positions))
			}
			if res.Width != 0 || res.Height != 0 {
				t.Errorf("bounds = %v×%v, want 0×0", res.Width, res.Height)
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	first := Compute(releasePlan())
	second := Compute(releasePlan())

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must produce identical output")
	}
}

func TestCompute_EveryStepPositioned(t *testing.T) {
	steps := releasePlan()
	res := Compute(steps)

	if len(res.Positions) != len(steps) {
		t.Fatalf("positions = %d, want %d", len(res.Positions), len(steps))
	}
	for _, s := range steps {
		if _, ok := res.Positions[s.ID]; !ok {
			t.Errorf("step %s has no position", s.ID)
		}
	}
}

func TestCompute_NoOverlapWithinRows(t *testing.T) {
	res := Compute(releasePlan())

	for r, ids := range res.Rows {
		xs := make([]float64, len(ids))
		for i, id := range ids {
			xs[i] = res.Positions[id].X
		}
		slices.Sort(xs)
		for i := 1; i < len(xs); i++ {
			if xs[i]-xs[i-1] < NodeWidth {
				t.Errorf("row %d: boxes at %v and %v overlap", r, xs[i-1], xs[i])
			}
		}
	}
}

func TestCompute_RowsMonotonicAlongEdges(t *testing.T) {
	res := Compute(releasePlan())
	rows := rowOf(res)

	for _, e := range res.Edges {
		if rows[e.To] <= rows[e.From] {
			t.Errorf("edge %s→%s: rows %d → %d, want strictly increasing",
				e.From, e.To, rows[e.From], rows[e.To])
		}
	}
}

func TestCompute_TwoStepCycleTerminates(t *testing.T) {
	res := Compute([]Step{
		{ID: "A", Children: []string{"B"}},
		{ID: "B", Children: []string{"A"}},
	})

	if len(res.Positions) != 2 {
		t.Fatalf("positions = %d, want 2", len(res.Positions))
	}
	if res.Positions["A"].Y != 0 || res.Positions["B"].Y != 0 {
		t.Errorf("cycle steps at y %v and %v, want both 0",
			res.Positions["A"].Y, res.Positions["B"].Y)
	}
}

func TestCompute_DependencyOnCompositeLandsBelowLeaves(t *testing.T) {
	res := Compute([]Step{
		{ID: "A", Children: []string{"B", "C"}},
		{ID: "B"},
		{ID: "C"},
		{ID: "D", Dependencies: []string{"A"}},
	})

	d := res.Positions["D"].Y
	if b := res.Positions["B"].Y; d <= b {
		t.Errorf("y(D) = %v, want below y(B) = %v", d, b)
	}
	if c := res.Positions["C"].Y; d <= c {
		t.Errorf("y(D) = %v, want below y(C) = %v", d, c)
	}
}

func TestCompute_RootCentredOverChildren(t *testing.T) {
	res := Compute([]Step{
		{ID: "root", Children: []string{"a", "b"}},
		{ID: "a"},
		{ID: "b"},
	})

	a, b, root := res.Positions["a"], res.Positions["b"], res.Positions["root"]

	if a.Y != NodeHeight+VerticalGap || b.Y != a.Y {
		t.Errorf("children at y %v and %v, want both %v", a.Y, b.Y, NodeHeight+VerticalGap)
	}
	childrenCentre := (a.X + b.X + NodeWidth) / 2
	if got := root.X + NodeWidth/2; got != childrenCentre {
		t.Errorf("root centre = %v, want %v", got, childrenCentre)
	}
	if want := 2*NodeWidth + HorizontalGap; res.Width != want {
		t.Errorf("Width = %v, want %v", res.Width, want)
	}
	if want := 2*NodeHeight + VerticalGap; res.Height != want {
		t.Errorf("Height = %v, want %v", res.Height, want)
	}
}

func TestCompute_ReleasePlanRows(t *testing.T) {
	res := Compute(releasePlan())
	rows := rowOf(res)

	want := map[string]int{
		"plan":     0,
		"design":   1,
		"build":    1,
		"api":      2,
		"schema":   2,
		"backend":  3,
		"frontend": 3,
		"ship":     4,
	}
	for id, r := range want {
		if rows[id] != r {
			t.Errorf("row(%s) = %d, want %d", id, rows[id], r)
		}
	}
}
