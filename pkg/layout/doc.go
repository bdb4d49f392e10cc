// Package layout computes deterministic board layouts for mission plans.
//
// # Overview
//
// A mission plan is a collection of steps related two ways: parent/child
// decomposition (a step's Children) and cross-branch precedence (a step's
// Dependencies). This package turns such a collection into a top-to-bottom
// board of layered rows - concrete (x, y) coordinates for every step plus
// the overall bounding width and height - without an external graph-layout
// library.
//
// [Compute] is the single entry point. It is a pure function of its input:
// no I/O, no caching, no state across calls, and safe for concurrent use on
// independent inputs.
//
// # Pipeline
//
// Five phases run strictly forward over a working graph owned by the call:
//
//  1. Graph build - containment and dependency records become directed edge
//     sets. A dependency on a composite step is rerouted to the composite's
//     leaf descendants: depending on a subtree means "after the whole
//     subtree," which visually means below its last row, not below the
//     composite's own (much higher) row.
//  2. Layering - Kahn's algorithm assigns each step a row equal to its
//     longest-path depth, so every used edge points strictly downward.
//  3. Row ordering - rows are sorted so steps sit near their earliest
//     predecessor in the row above; row 0 keeps input order.
//  4. Subtree widths - bottom-up along containment, each step reserves
//     enough horizontal space for its descendants.
//  5. Placement - boxes are centred in their reserved slots, parents are
//     recentred over their children, and residual overlaps are pushed right.
//
// # Degraded Input
//
// The engine never fails on malformed data. Unknown IDs are skipped, cycles
// terminate with the affected steps in row 0, duplicate IDs keep the first
// record. The one defensive stance is the usual Go one: handing a nil
// working graph to an internal phase is a programmer error and panics.
//
// # Determinism
//
// Identical input (including order) produces identical output. Row 0
// preserves input order, later rows sort stably, and every phase iterates
// steps in input order rather than map order.
package layout
