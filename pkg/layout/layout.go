package layout

// Layout parameters, in abstract layout units (pixels in the reference UI).
// These are tunable rendering constants, not semantic invariants.
const (
	// NodeWidth is the horizontal extent of every step box.
	NodeWidth = 260.0
	// NodeHeight is the vertical extent of every step box.
	NodeHeight = 110.0
	// HorizontalGap is the minimum spacing between adjacent boxes in a row.
	HorizontalGap = 50.0
	// VerticalGap is the spacing between consecutive rows.
	VerticalGap = 80.0
)

// Step is a single mission-plan step record, the engine's only input entity.
//
// The zero value is not useful - ID must be set. IDs are caller-assigned and
// assumed unique; duplicate IDs are tolerated (the first record wins) but
// yield caller-contract-undefined placement. Children and Dependencies may
// reference IDs not present in the input collection; such references are
// silently ignored.
type Step struct {
	ID           string   // Unique identifier (also used as the position key)
	Children     []string // Direct sub-steps, in authored order (containment)
	Dependencies []string // Steps that must land strictly above this one (precedence)
}

// Point is the top-left corner of a placed step box, in layout units.
type Point struct {
	X float64
	Y float64
}

// Edge is a directed ordering constraint between two steps as used by the
// layering, after dependency rerouting. From lands strictly above To whenever
// the combined relation is acyclic.
type Edge struct {
	From string // Source step ID
	To   string // Target step ID
}

// Result is one computed board layout. All maps and slices are owned by the
// caller; the engine keeps no reference to them after returning.
type Result struct {
	// Positions maps every input step ID to the top-left corner of its box.
	Positions map[string]Point

	// Rows maps each row index to its step IDs in final left-to-right order.
	Rows map[int][]string

	// Edges lists the ordering edges the layering used (containment plus
	// rerouted dependency edges), deduplicated, in deterministic build order.
	Edges []Edge

	// Width and Height are the overall bounding dimensions: the maxima of
	// x+NodeWidth and y+NodeHeight over all placed boxes.
	Width  float64
	Height float64
}

// Compute lays out the given steps as a top-to-bottom board of layered rows
// and returns the resulting positions and bounds.
//
// # Algorithm
//
// Compute runs a five-phase pipeline over an in-memory graph built fresh for
// this call:
//
//  1. Build directed edge sets from containment and dependencies, rerouting
//     any dependency on a composite step to that step's leaf descendants.
//  2. Assign each step a row equal to its longest-path depth (Kahn's
//     algorithm), so every used edge points strictly downward.
//  3. Order each row left to right by the position of each step's
//     predecessors in the row above, ties keeping input order.
//  4. Compute bottom-up subtree widths along containment, so a parent's row
//     reserves enough horizontal space for all of its descendants.
//  5. Place boxes: centre each box in its reserved slot, recentre parents
//     over their children, then push overlapping boxes right.
//
// Control flows strictly forward through the phases; there is no feedback
// loop and no caching across calls.
//
// # Degraded Input
//
// Compute never fails. Unknown IDs referenced by Children or Dependencies
// are skipped, cyclic relations terminate with the affected steps defaulting
// to row 0, and duplicate IDs keep the first record. Malformed input degrades
// to fewer edges or a flatter board, never to an error.
//
// # Nil Handling
//
// A nil slice is the empty collection: the result carries an empty position
// map and zero bounds.
//
// # Performance
//
// Time complexity is O(V + E) for graph build, layering and widths, plus
// O(V log V) for the per-row sorts. Pathological inputs (deep containment
// chains with many dependencies on composites) can drive the leaf-descendant
// searches toward O(V²); mission plans in the tens to low hundreds of steps
// stay well clear of that.
func Compute(steps []Step) Result {
	g := buildGraph(steps)
	rows := assignRows(g)
	order := orderRows(g, rows)
	widths := subtreeWidths(g, order)
	return place(g, order, widths)
}
