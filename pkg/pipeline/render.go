package pipeline

import (
	"fmt"

	"github.com/planboard/planboard/pkg/plan"
	"github.com/planboard/planboard/pkg/render"
	"github.com/planboard/planboard/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func Render(l plan.Layout, p plan.Plan, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		// For nodelink, generate the DOT graph on-demand from the plan
		return renderNodelink(l, p, opts)
	}
	return renderBoard(l, opts)
}

// renderBoard generates board outputs.
func renderBoard(l plan.Layout, opts Options) (map[string][]byte, error) {
	boardOpts, err := buildBoardOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(l, boardOpts...)
		case FormatJSON:
			data, err = plan.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported board format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs.
// The DOT graph is regenerated from the plan because it carries the engine's
// layered rows, which the serialized board layout does not preserve per edge.
func renderNodelink(l plan.Layout, p plan.Plan, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(p.Compute(), nodelink.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot)
		case FormatJSON:
			data, err = plan.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildBoardOptions builds board rendering options.
func buildBoardOptions(opts Options) ([]render.RenderOption, error) {
	style, err := render.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}

	boardOpts := []render.RenderOption{render.WithStyle(style)}
	if opts.HideEdges {
		boardOpts = append(boardOpts, render.WithoutEdges())
	}
	return boardOpts, nil
}
