package layout

// stepGraph is the engine's working graph for a single [Compute] call.
// It indexes steps by ID and holds the rerouted edge sets the later phases
// operate on. Nothing in it survives the call.
type stepGraph struct {
	order    []string            // known step IDs in input order
	steps    map[string]Step     // ID -> first record carrying that ID
	children map[string][]string // ID -> known containment children, authored order
	edges    []Edge              // deduplicated edges in build order
	outgoing map[string][]string // ID -> edge targets
	incoming map[string][]string // ID -> edge sources
	edgeSet  map[Edge]struct{}
}

// buildGraph turns the step collection into directed edge sets.
//
// Containment contributes an edge parent→child for every known child. A
// dependency d of step s contributes d→s when d is a leaf; when d has
// children, the edge is drawn from every leaf descendant of d's subtree
// instead, so s lands below the entire subtree rather than below the
// composite's own row. Unknown IDs contribute nothing.
func buildGraph(steps []Step) *stepGraph {
	g := &stepGraph{
		steps:    make(map[string]Step, len(steps)),
		children: make(map[string][]string, len(steps)),
		outgoing: make(map[string][]string, len(steps)),
		incoming: make(map[string][]string, len(steps)),
		edgeSet:  make(map[Edge]struct{}),
	}

	for _, s := range steps {
		if _, exists := g.steps[s.ID]; exists {
			continue // duplicate ID, first record wins
		}
		g.steps[s.ID] = s
		g.order = append(g.order, s.ID)
	}

	for _, id := range g.order {
		for _, c := range g.steps[id].Children {
			if g.has(c) {
				g.children[id] = append(g.children[id], c)
			}
		}
	}

	for _, id := range g.order {
		for _, c := range g.children[id] {
			g.addEdge(id, c)
		}
		for _, d := range g.steps[id].Dependencies {
			if !g.has(d) {
				continue
			}
			if g.isLeaf(d) {
				g.addEdge(d, id)
				continue
			}
			for _, leaf := range g.leafDescendants(d) {
				g.addEdge(leaf, id)
			}
		}
	}

	return g
}

func (g *stepGraph) has(id string) bool {
	_, ok := g.steps[id]
	return ok
}

// isLeaf reports whether the step has no known children. A step whose
// authored children are all unknown behaves as a leaf.
func (g *stepGraph) isLeaf(id string) bool { return len(g.children[id]) == 0 }

// addEdge records from→to in the edge sets, ignoring repeats.
func (g *stepGraph) addEdge(from, to string) {
	e := Edge{From: from, To: to}
	if _, dup := g.edgeSet[e]; dup {
		return
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
}

// leafDescendants returns the leaves of id's containment subtree in
// depth-first child order. The visited set guards against cyclic children;
// a cycle with no leaf underneath yields an empty result.
func (g *stepGraph) leafDescendants(id string) []string {
	var leaves []string
	visited := map[string]struct{}{id: {}}

	var walk func(id string)
	walk = func(id string) {
		for _, c := range g.children[id] {
			if _, seen := visited[c]; seen {
				continue
			}
			visited[c] = struct{}{}
			if g.isLeaf(c) {
				leaves = append(leaves, c)
				continue
			}
			walk(c)
		}
	}
	walk(id)

	return leaves
}
