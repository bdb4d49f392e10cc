package layout

import (
	"maps"
	"slices"
)

// subtreeWidths computes each step's horizontal footprint: enough space for
// its own box and, transitively, for the boxes of all its children. Width
// propagates along containment only; dependencies never widen a subtree.
//
// Rows are processed from the last to the first so children are finalized
// before their parents:
//   - Leaf: NodeWidth
//   - Parent: max(NodeWidth, Σ childWidth + (n-1)·HorizontalGap)
//
// A child that layering left at or above its parent's row (cyclic input) has
// no finalized width yet and counts as NodeWidth.
func subtreeWidths(g *stepGraph, order map[int][]string) map[string]float64 {
	widths := make(map[string]float64, len(g.order))

	rows := slices.Sorted(maps.Keys(order))
	for i := len(rows) - 1; i >= 0; i-- {
		for _, id := range order[rows[i]] {
			kids := g.children[id]
			if len(kids) == 0 {
				widths[id] = NodeWidth
				continue
			}
			sum := float64(len(kids)-1) * HorizontalGap
			for _, kid := range kids {
				sum += childWidth(widths, kid)
			}
			widths[id] = max(NodeWidth, sum)
		}
	}

	return widths
}

func childWidth(widths map[string]float64, id string) float64 {
	if w, ok := widths[id]; ok {
		return w
	}
	return NodeWidth
}
