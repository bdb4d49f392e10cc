// Package render turns computed board layouts into visual outputs.
//
// # Overview
//
// This package contains the rendering surface that transforms computed
// layouts into images. It provides:
//
//   - Board SVG (this package): the mission board drawing
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Board SVG
//
// [RenderSVG] draws a [plan.Layout] as a self-contained SVG document:
// rounded step boxes colored by status, solid lines for containment,
// dashed lines for dependencies, and step titles truncated to fit.
//
//	svg := render.RenderSVG(l, render.WithStyle(render.NewDark()))
//
// Styles implement [Style]; [NewLight] and [NewDark] are built in, and
// [StyleByName] resolves the names used by CLI flags and API parameters.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the layered step graph as a directed
// diagram using Graphviz. It shows the edges the layout engine actually
// layered with - including rerouted dependencies - which makes it the
// right tool for debugging row assignment.
//
//	dot := nodelink.ToDOT(res, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/planboard/planboard/pkg/render/nodelink
// [plan.Layout]: github.com/planboard/planboard/pkg/plan
package render
