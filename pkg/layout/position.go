package layout

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

// place converts rows and subtree widths into concrete coordinates and
// assembles the [Result]. Three sequential passes over one position map:
//
//   - Row layout: walk each row left to right with an x cursor, centring
//     every box inside its reserved subtree-width slot, at
//     y = row · (NodeHeight + VerticalGap).
//   - Parent centring: walk rows from second-to-last up to the first and move
//     every parent to the horizontal centre of its children's bounding box,
//     overriding the first pass.
//   - Overlap repair: walk each row in ascending x and push any box that
//     intrudes on its left neighbour right to x + NodeWidth + HorizontalGap.
//     The pass never pushes left, so repaired rows stay repaired.
func place(g *stepGraph, order map[int][]string, widths map[string]float64) Result {
	positions := make(map[string]Point, len(g.order))
	rows := slices.Sorted(maps.Keys(order))

	for _, r := range rows {
		y := float64(r) * (NodeHeight + VerticalGap)
		cursor := 0.0
		for _, id := range order[r] {
			slot := widths[id]
			positions[id] = Point{X: cursor + (slot-NodeWidth)/2, Y: y}
			cursor += slot + HorizontalGap
		}
	}

	for i := len(rows) - 2; i >= 0; i-- {
		for _, id := range order[rows[i]] {
			kids := g.children[id]
			if len(kids) == 0 {
				continue
			}
			left := math.Inf(1)
			right := math.Inf(-1)
			for _, kid := range kids {
				p := positions[kid]
				left = min(left, p.X)
				right = max(right, p.X+NodeWidth)
			}
			pos := positions[id]
			pos.X = (left+right)/2 - NodeWidth/2
			positions[id] = pos
		}
	}

	// Repaired rows come out in ascending x, so the sorted walk doubles as
	// the final left-to-right row order.
	rowsOut := make(map[int][]string, len(order))
	for _, r := range rows {
		row := slices.Clone(order[r])
		slices.SortStableFunc(row, func(a, b string) int {
			return cmp.Compare(positions[a].X, positions[b].X)
		})
		for i := 1; i < len(row); i++ {
			minX := positions[row[i-1]].X + NodeWidth + HorizontalGap
			if pos := positions[row[i]]; pos.X < minX {
				pos.X = minX
				positions[row[i]] = pos
			}
		}
		rowsOut[r] = row
	}

	var width, height float64
	for _, p := range positions {
		width = max(width, p.X+NodeWidth)
		height = max(height, p.Y+NodeHeight)
	}

	return Result{
		Positions: positions,
		Rows:      rowsOut,
		Edges:     slices.Clone(g.edges),
		Width:     width,
		Height:    height,
	}
}
