package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/planboard/planboard/pkg/errors"
	"github.com/planboard/planboard/pkg/plan"
)

// Style defines the visual appearance for board rendering.
// Implementations control how blocks, edges, and text are drawn.
type Style interface {
	// Name returns the style's registered name, e.g. "light".
	Name() string
	// Background returns the canvas fill color.
	Background() string
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single step box.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderEdge writes the SVG for a relation line.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderText writes the SVG for a block's title text.
	RenderText(buf *bytes.Buffer, b Block)
}

// Block contains all data needed to render a single step box.
type Block struct {
	ID         string  // Step identifier
	Label      string  // Display text
	Status     string  // Step status, picks the fill color
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
}

// Edge contains positioning data for rendering a relation line.
type Edge struct {
	FromID, ToID   string  // Connected step IDs
	X1, Y1, X2, Y2 float64 // Line coordinates
	Dashed         bool    // Dependencies are dashed, containment solid
}

// blockColors is one status's fill and stroke pair.
type blockColors struct {
	fill   string
	stroke string
}

// boardStyle is a palette-driven Style shared by the built-in themes.
type boardStyle struct {
	name       string
	background string
	edge       string
	text       string
	statuses   map[string]blockColors
	fallback   blockColors
}

// NewLight creates the default board style: dark text on a white canvas.
func NewLight() Style {
	return &boardStyle{
		name:       "light",
		background: "#ffffff",
		edge:       "#94a3b8",
		text:       "#0f172a",
		statuses: map[string]blockColors{
			plan.StatusPending: {fill: "#f1f5f9", stroke: "#cbd5e1"},
			plan.StatusActive:  {fill: "#dbeafe", stroke: "#3b82f6"},
			plan.StatusDone:    {fill: "#dcfce7", stroke: "#22c55e"},
			plan.StatusBlocked: {fill: "#fee2e2", stroke: "#ef4444"},
		},
		fallback: blockColors{fill: "#f8fafc", stroke: "#94a3b8"},
	}
}

// NewDark creates the dark board style: light text on a slate canvas.
func NewDark() Style {
	return &boardStyle{
		name:       "dark",
		background: "#0f172a",
		edge:       "#475569",
		text:       "#e2e8f0",
		statuses: map[string]blockColors{
			plan.StatusPending: {fill: "#1e293b", stroke: "#475569"},
			plan.StatusActive:  {fill: "#1e3a8a", stroke: "#60a5fa"},
			plan.StatusDone:    {fill: "#14532d", stroke: "#4ade80"},
			plan.StatusBlocked: {fill: "#7f1d1d", stroke: "#f87171"},
		},
		fallback: blockColors{fill: "#1e293b", stroke: "#64748b"},
	}
}

// StyleByName resolves a style name as used by CLI flags and API parameters.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", "light":
		return NewLight(), nil
	case "dark":
		return NewDark(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"unknown style %q (supported: light, dark)", name)
	}
}

func (s *boardStyle) Name() string       { return s.name }
func (s *boardStyle) Background() string { return s.background }

func (s *boardStyle) RenderDefs(buf *bytes.Buffer) {}

func (s *boardStyle) RenderBlock(buf *bytes.Buffer, b Block) {
	c, ok := s.statuses[b.Status]
	if !ok {
		c = s.fallback
	}
	fmt.Fprintf(buf,
		`    <rect id="block-%s" class="block" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, blockCornerRadius, c.fill, c.stroke)
}

func (s *boardStyle) RenderEdge(buf *bytes.Buffer, e Edge) {
	dash := ""
	if e.Dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(buf,
		`    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		e.X1, e.Y1, e.X2, e.Y2, s.edge, dash)
}

func (s *boardStyle) RenderText(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf,
		`    <text class="block-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="system-ui, sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		b.CX, b.CY, fontSize, s.text, EscapeXML(TruncateLabel(b)))
}

const (
	blockCornerRadius = 10.0
	fontSize          = 16.0
	fontCharWidth     = 0.55
	labelPadding      = 16.0
)

// TruncateLabel shortens a block's label to fit its width.
// Labels that don't fit are cut and suffixed with "..".
func TruncateLabel(b Block) string {
	label := b.Label
	availW := b.W - 2*labelPadding

	maxChars := int(availW / (fontSize * fontCharWidth))
	if maxChars < 3 {
		maxChars = 3
	}

	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}

// EscapeXML escapes a string for embedding in SVG markup.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
