package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindtree/pkg/document"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/pipeline"
)

// layoutFlags are the flags shared by every command that lays out a
// document. Only flags set on the command line override the config.
type layoutFlags struct {
	engine   string
	margin   float64
	paddingH float64
	paddingV float64
	fontSize float64
	maxWidth float64
	maxDepth int
	maxNodes int
	refresh  bool
	noCache  bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.engine, "engine", layout.DefaultEngine, fmt.Sprintf("layout engine %v", layout.Names()))
	fs.Float64Var(&f.margin, "margin", layout.DefaultMargin, "canvas margin around the tree")
	fs.Float64Var(&f.paddingH, "padding-h", 0, "horizontal gap between a parent and its children")
	fs.Float64Var(&f.paddingV, "padding-v", 0, "vertical gap between siblings")
	fs.Float64Var(&f.fontSize, "font-size", 0, "default node font size")
	fs.Float64Var(&f.maxWidth, "max-width", 0, "default node max width (0 = unbounded)")
	fs.IntVar(&f.maxDepth, "max-depth", pipeline.DefaultMaxDepth, "reject documents deeper than this")
	fs.IntVar(&f.maxNodes, "max-nodes", pipeline.DefaultMaxNodes, "reject documents with more nodes than this")
	fs.BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply overrides opts with the flags the user set.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("engine") {
		opts.Engine = f.engine
	}
	if changed("margin") {
		m := f.margin
		opts.Margin = &m
	}
	if changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if changed("max-nodes") {
		opts.MaxNodes = f.maxNodes
	}
	opts.Refresh = f.refresh

	if !changed("padding-h") && !changed("padding-v") && !changed("font-size") && !changed("max-width") {
		return
	}
	style := &document.StyleSpec{}
	if opts.Style != nil {
		*style = *opts.Style
	}
	if changed("padding-h") {
		style.PaddingHorizontal = &f.paddingH
	}
	if changed("padding-v") {
		style.PaddingVertical = &f.paddingV
	}
	if changed("font-size") || changed("max-width") {
		node := &document.NodeStyleSpec{}
		if style.Node != nil {
			*node = *style.Node
		}
		if changed("font-size") {
			node.FontSize = &f.fontSize
		}
		if changed("max-width") {
			node.MaxWidth = &f.maxWidth
		}
		style.Node = node
	}
	opts.Style = style
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Compute the layout of a mindmap document",
		Long: `Compute the layout of a mindmap document.

The document is JSON, YAML or TOML (chosen by extension). The output is a
layout.json file that 'visualize' renders to SVG, PNG, PDF or DOT.

Results are cached; use --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, lf.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.layout.json)")
	lf.register(cmd)
	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	m, err := pipeline.ParseFile(input, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Computing layout...")
	spinner.Start()
	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "-" {
		data, err := graph.MarshalLayout(l)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := graph.WriteLayoutFile(l, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(stats{nodes: m.Count(), depth: m.Depth(), width: l.Width, height: l.Height, cached: cacheHit})
	printNewline()
	printNextStep("Render", appName+" visualize "+output)
	return nil
}
