// Package plan provides serialization types for mission plans and computed
// board layouts.
//
// This package defines the canonical wire format for Planboard's data, used
// for JSON files, API requests and responses, caching, and storage.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and external formats:
//
//   - [Plan], [Step]: a mission as authored (ordered steps, containment,
//     dependencies)
//   - [Layout], [Block]: a mission as computed (absolute coordinates, edges,
//     rows)
//   - pkg/layout: the engine that turns the former into the latter
//
// Use [Plan.Compute] to run the engine and [FromResult] to serialize what it
// returns.
//
// # Plan Serialization
//
// Plans use a simple JSON format; step order is significant and preserved:
//
//	{
//	  "name": "release",
//	  "steps": [
//	    {"id": "root", "title": "Ship 1.0", "children": ["a", "b"]},
//	    {"id": "a"},
//	    {"id": "b", "dependencies": ["a"]}
//	  ]
//	}
//
// Common operations:
//
//	p, _ := plan.ReadPlanFile("mission.json")  // File → Plan
//	plan.WritePlanFile(p, "out.json")          // Plan → File
//	data, _ := plan.MarshalPlan(p)             // Plan → []byte
//	parsed, _ := plan.UnmarshalPlan(data)      // []byte → Plan
//
// The same four operations exist for [Layout].
//
// # Validation
//
// [Plan.Validate] reports authoring mistakes (dangling references, duplicate
// IDs, containment cycles) as advisory [Issue] values. The layout engine
// tolerates all of them, so validation is a linting surface, not a gate.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package plan
