package plan

import (
	"maps"
	"slices"

	"github.com/planboard/planboard/pkg/layout"
)

// Edge kinds in a serialized layout.
const (
	EdgeKindChild      = "child"
	EdgeKindDependency = "dependency"
)

// =============================================================================
// Layout - Computed Board Serialization
// =============================================================================

// Layout is the canonical serialization format for a computed board.
// Used for JSON files, API responses, storage, and caching.
//
// Blocks carry absolute coordinates, so a renderer needs no knowledge of the
// layout engine or its constants. Edges carry the authored relations between
// known steps (containment and dependencies as written, not the rerouted
// edges the engine layered with), which is what a board drawing shows.
type Layout struct {
	Name   string  `json:"name,omitempty" bson:"name,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Blocks []Block `json:"blocks" bson:"blocks"`
	Edges  []Edge  `json:"edges,omitempty" bson:"edges,omitempty"`

	// Rows lists step IDs per row, top to bottom, left to right. Rows are
	// always consecutive, so a slice of slices is enough.
	Rows [][]string `json:"rows,omitempty" bson:"rows,omitempty"`
}

// Block is one positioned step box.
type Block struct {
	ID     string  `json:"id" bson:"id"`
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Status string  `json:"status,omitempty" bson:"status,omitempty"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Edge is one drawn relation between two blocks.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
	Kind string `json:"kind" bson:"kind"` // "child" or "dependency"
}

// Block returns the block with the given ID and true, or a zero block and
// false if the layout has no such block.
func (l *Layout) Block(id string) (Block, bool) {
	for _, b := range l.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// RowCount returns the number of rows in the layout.
func (l *Layout) RowCount() int { return len(l.Rows) }

// =============================================================================
// Result → Layout Conversion
// =============================================================================

// FromResult combines a plan with its engine result into a serializable
// layout. Blocks keep plan order (duplicate IDs collapse to the first
// record); edges are the authored relations filtered to known steps.
func FromResult(p Plan, res layout.Result) Layout {
	out := Layout{
		Name:   p.Name,
		Width:  res.Width,
		Height: res.Height,
		Blocks: make([]Block, 0, len(res.Positions)),
	}

	seen := make(map[string]bool, len(p.Steps))
	for _, s := range p.Steps {
		pos, ok := res.Positions[s.ID]
		if !ok || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out.Blocks = append(out.Blocks, Block{
			ID:     s.ID,
			Title:  s.DisplayTitle(),
			Status: s.Status,
			X:      pos.X,
			Y:      pos.Y,
			Width:  layout.NodeWidth,
			Height: layout.NodeHeight,
		})
	}

	emitted := make(map[Edge]bool)
	for _, s := range p.Steps {
		for _, c := range s.Children {
			addEdge(&out, emitted, seen, Edge{From: s.ID, To: c, Kind: EdgeKindChild})
		}
		for _, d := range s.Dependencies {
			addEdge(&out, emitted, seen, Edge{From: d, To: s.ID, Kind: EdgeKindDependency})
		}
	}

	for _, r := range slices.Sorted(maps.Keys(res.Rows)) {
		out.Rows = append(out.Rows, slices.Clone(res.Rows[r]))
	}

	return out
}

func addEdge(l *Layout, emitted map[Edge]bool, known map[string]bool, e Edge) {
	if !known[e.From] || !known[e.To] || emitted[e] {
		return
	}
	emitted[e] = true
	l.Edges = append(l.Edges, e)
}
