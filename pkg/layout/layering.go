package layout

// assignRows assigns every known step a row based on its depth in the edge
// graph and returns the row map. Row = the length of the longest edge path
// ending at the step, so:
//   - Steps with no incoming edges sit in row 0
//   - Every edge source sits strictly above its target
//   - A step is pushed as deep as its deepest predecessor requires
//
// # Algorithm
//
// assignRows runs a topological traversal (Kahn's algorithm):
//  1. Seed a FIFO queue with every step of in-degree 0, at row 0
//  2. Pop a step; raise each edge target to at least one row below it
//  3. Decrement the target's in-degree; enqueue it when it reaches 0
//  4. Repeat until the queue drains
//
// # Cycles
//
// Steps on a cycle with no zero-in-degree entry point never drain and keep
// their default row 0. The traversal still terminates; no attempt is made to
// break the cycle.
//
// # Nil Handling
//
// assignRows panics if g is nil. An empty graph yields an empty map.
//
// # Performance
//
// Time complexity is O(V + E), space O(V) for the queue and the row and
// degree maps.
func assignRows(g *stepGraph) map[string]int {
	inDegree := make(map[string]int, len(g.order))
	rows := make(map[string]int, len(g.order))
	queue := make([]string, 0, len(g.order))

	for _, id := range g.order {
		rows[id] = 0
		degree := len(g.incoming[id])
		inDegree[id] = degree
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range g.outgoing[curr] {
			if row := rows[curr] + 1; row > rows[next] {
				rows[next] = row
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return rows
}
