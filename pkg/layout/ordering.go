package layout

import (
	"cmp"
	"math"
	"slices"
)

// unanchored sorts a step behind every step that has a positioned
// predecessor.
const unanchored = math.MaxInt

// orderRows groups steps into rows and fixes each row's left-to-right order.
//
// Row 0 keeps input order. Every later row is stable-sorted by the minimum
// position any of the step's predecessors held in the row above, so a step
// tends to line up near its earliest-appearing parent. Steps whose
// predecessors all sit elsewhere carry no key and sort behind the keyed ones;
// ties keep relative input order. After a row is sorted its positions are
// recorded for the next row's sort - the position map holds one row at a
// time.
func orderRows(g *stepGraph, rows map[string]int) map[int][]string {
	order := make(map[int][]string)
	maxRow := 0
	for _, id := range g.order {
		r := rows[id]
		order[r] = append(order[r], id)
		if r > maxRow {
			maxRow = r
		}
	}

	prev := posMap(order[0])
	for r := 1; r <= maxRow; r++ {
		row := order[r]
		slices.SortStableFunc(row, func(a, b string) int {
			return cmp.Compare(anchor(g, prev, a), anchor(g, prev, b))
		})
		prev = posMap(row)
	}

	return order
}

// anchor returns the minimum recorded position among the step's
// predecessors, or unanchored when none of them is in the previous row.
func anchor(g *stepGraph, prev map[string]int, id string) int {
	best := unanchored
	for _, p := range g.incoming[id] {
		if pos, ok := prev[p]; ok && pos < best {
			best = pos
		}
	}
	return best
}

// posMap maps each ID to its index in the slice.
func posMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
