package pipeline

import (
	"context"
	"fmt"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/render"
	"github.com/matzehuels/mindtree/pkg/render/nodelink"
	"github.com/matzehuels/mindtree/pkg/render/sink"
)

// RenderFormat renders one output format. opts must have passed
// ValidateForRender.
func RenderFormat(ctx context.Context, l graph.Layout, format string, opts Options) ([]byte, error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	switch f {
	case render.FormatJSON:
		return sink.RenderJSON(l)
	case render.FormatDOT:
		return []byte(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})), nil
	}
	if l.IsEmpty() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "cannot render an empty mindmap as %s", f)
	}

	if opts.Renderer == RendererGraphviz {
		return renderGraphviz(ctx, l, f, opts)
	}

	sinkOpts, err := buildSinkOptions(opts)
	if err != nil {
		return nil, err
	}
	switch f {
	case render.FormatSVG:
		return sink.RenderSVG(l, sinkOpts...), nil
	case render.FormatPNG:
		if opts.Renderer == RendererChrome {
			return sink.RenderPNGChrome(ctx, l, sinkOpts...)
		}
		return sink.RenderPNG(l, sinkOpts...)
	case render.FormatPDF:
		return sink.RenderPDF(l, sinkOpts...)
	}
	return nil, fmt.Errorf("unsupported format: %s", f)
}

func renderGraphviz(ctx context.Context, l graph.Layout, f render.Format, opts Options) ([]byte, error) {
	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})
	switch f {
	case render.FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case render.FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case render.FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported graphviz format: %s", f)
}

func buildSinkOptions(opts Options) ([]sink.Option, error) {
	theme, err := sink.ThemeByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	out := []sink.Option{
		sink.WithTheme(theme),
		sink.WithConnectors(sink.Connector(opts.Connector)),
		sink.WithScale(opts.Scale),
	}
	if opts.EmbedFont {
		out = append(out, sink.WithEmbeddedFont())
	}
	return out, nil
}
