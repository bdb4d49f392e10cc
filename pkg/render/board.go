package render

import (
	"bytes"
	"fmt"

	"github.com/planboard/planboard/pkg/plan"
)

const boardCSS = `
    .block { transition: stroke-width 0.15s ease; }
    .block:hover { stroke-width: 3; }`

// defaultPadding is the whitespace around the board in the rendered document.
const defaultPadding = 24.0

// RenderOption configures board rendering.
type RenderOption func(*renderer)

type renderer struct {
	style   Style
	noEdges bool
	padding float64
}

// WithStyle sets the board style. The default is [NewLight].
func WithStyle(s Style) RenderOption { return func(r *renderer) { r.style = s } }

// WithoutEdges omits relation lines from the drawing.
func WithoutEdges() RenderOption { return func(r *renderer) { r.noEdges = true } }

// WithPadding sets the whitespace around the board. Negative values are ignored.
func WithPadding(px float64) RenderOption {
	return func(r *renderer) {
		if px >= 0 {
			r.padding = px
		}
	}
}

// RenderSVG draws a computed layout as a self-contained SVG document.
//
// Relation lines are drawn first (containment solid, dependencies dashed),
// then the step boxes, then the titles, so boxes cover line endpoints and
// text covers boxes. An empty layout renders a valid document with no content.
func RenderSVG(l plan.Layout, opts ...RenderOption) []byte {
	r := renderer{style: NewLight(), padding: defaultPadding}
	for _, opt := range opts {
		opt(&r)
	}

	blocks := buildBlocks(l)

	var edges []Edge
	if !r.noEdges {
		edges = buildEdges(l)
	}

	w := l.Width + 2*r.padding
	h := l.Height + 2*r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.style.Background())
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", boardCSS)

	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)">`+"\n", r.padding, r.padding)
	for _, e := range edges {
		r.style.RenderEdge(&buf, e)
	}
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	for _, b := range blocks {
		r.style.RenderText(&buf, b)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func buildBlocks(l plan.Layout) []Block {
	blocks := make([]Block, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		blocks = append(blocks, Block{
			ID:     b.ID,
			Label:  b.Title,
			Status: b.Status,
			X:      b.X, Y: b.Y,
			W: b.Width, H: b.Height,
			CX: b.X + b.Width/2, CY: b.Y + b.Height/2,
		})
	}
	return blocks
}

// buildEdges turns the layout's relations into drawable lines running from
// the upper block's bottom edge to the lower block's top edge.
func buildEdges(l plan.Layout) []Edge {
	byID := make(map[string]plan.Block, len(l.Blocks))
	for _, b := range l.Blocks {
		byID[b.ID] = b
	}

	edges := make([]Edge, 0, len(l.Edges))
	for _, e := range l.Edges {
		src, okS := byID[e.From]
		dst, okD := byID[e.To]
		if !okS || !okD {
			continue
		}
		edges = append(edges, Edge{
			FromID: e.From, ToID: e.To,
			X1: src.X + src.Width/2, Y1: src.Y + src.Height,
			X2: dst.X + dst.Width/2, Y2: dst.Y,
			Dashed: e.Kind == plan.EdgeKindDependency,
		})
	}
	return edges
}
