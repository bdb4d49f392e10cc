// Package nodelink renders the layered step graph as a node-link diagram.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// steps appear as boxes connected by arrows. Unlike the board drawing, which
// shows the relations as authored, the node-link diagram shows the edges the
// layout engine actually layered with - dependencies on composite steps
// appear rerouted to their leaf descendants. That makes it the right tool
// for debugging row assignment.
//
// # Usage
//
// Convert a layout result to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(res, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PNG output:
//
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the assigned row number
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes, and pins each engine row to one Graphviz rank so the diagram's
// vertical structure matches the computed board.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
