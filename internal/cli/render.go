package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindtree/pkg/pipeline"
	"github.com/matzehuels/mindtree/pkg/render"
	"github.com/matzehuels/mindtree/pkg/render/sink"
)

// renderFlags are the flags shared by render and visualize.
type renderFlags struct {
	formats   string
	theme     string
	connector string
	renderer  string
	scale     float64
	embedFont bool
	detailed  bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	fs.StringVar(&f.theme, "theme", pipeline.DefaultTheme, fmt.Sprintf("color theme %v", sink.ThemeNames()))
	fs.StringVar(&f.connector, "connector", pipeline.DefaultConnector, fmt.Sprintf("edge style %v", pipeline.Connectors))
	fs.StringVar(&f.renderer, "renderer", pipeline.DefaultRenderer, fmt.Sprintf("svg/png/pdf backend %v", pipeline.Renderers))
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	fs.BoolVar(&f.embedFont, "embed-font", false, "embed the node font in SVG output")
	fs.BoolVar(&f.detailed, "detailed", false, "include node sizes in DOT labels")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("format") || len(opts.Formats) == 0 {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("theme") {
		opts.Theme = f.theme
	}
	if changed("connector") {
		opts.Connector = f.connector
	}
	if changed("renderer") {
		opts.Renderer = f.renderer
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("embed-font") {
		opts.EmbedFont = f.embedFont
	}
	opts.Detailed = f.detailed
}

// renderCommand creates the render command, which goes straight from a
// document to rendered files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
		rf     renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Lay out and render a mindmap document",
		Long: `Lay out and render a mindmap document in one step.

With a single format, -o names the output file. With several formats, -o is
a base path and each format gets its own extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			rf.apply(cmd, &opts)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, lf.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (several)")
	lf.register(cmd)
	rf.register(cmd)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := pipeline.ParseFile(input, opts)
	if err != nil {
		return err
	}
	logger.Debug("parsed document", "path", input, "nodes", m.Count(), "depth", m.Depth())

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}
	prog.done("render finished", "formats", len(paths))

	printSuccess("Rendered %s", input)
	for _, p := range paths {
		printFile(p)
	}
	printStats(stats{
		nodes:  result.Stats.NodeCount,
		depth:  result.Stats.Depth,
		width:  result.Layout.Width,
		height: result.Layout.Height,
		cached: result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
	return nil
}

// =============================================================================
// Output Paths
// =============================================================================

// basePath derives the extension-less output path. An empty output strips
// the input's extension (and a trailing ".layout"); an output ending in a
// known format extension loses that extension.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses that path as-is; "-" means stdout.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + render.Format(f).Ext()
	}
	return paths
}

// writeArtifacts writes every rendered format and returns the paths written
// in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := outputPaths(formats, input, output)
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return written, fmt.Errorf("renderer produced no %s output", f)
		}
		path := paths[f]
		if path == "-" {
			if _, err := os.Stdout.Write(data); err != nil {
				return written, err
			}
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
