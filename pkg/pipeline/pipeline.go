// Package pipeline runs the parse → layout → render pipeline for mindmap
// documents.
//
// The CLI and the HTTP server both go through a [Runner], so caching,
// validation and defaults behave the same on every entry point.
//
// # Stages
//
//  1. Parse: decode a JSON, YAML or TOML document into a mindmap
//  2. Layout: size, position and finalize every node, producing a graph.Layout
//  3. Render: turn the layout into SVG, PNG, PDF, DOT or JSON
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	m, err := pipeline.ParseFile("plan.yaml", opts)
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, m, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mindtree/pkg/cache"
	"github.com/matzehuels/mindtree/pkg/document"
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
	"github.com/matzehuels/mindtree/pkg/render"
	"github.com/matzehuels/mindtree/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxDepth bounds the number of tree levels. Placement recurses
	// once per level, so this also bounds stack usage.
	DefaultMaxDepth = 256

	// DefaultMaxNodes bounds the number of nodes in one mindmap.
	DefaultMaxNodes = 10000

	// DefaultTheme is the default color scheme.
	DefaultTheme = "light"

	// DefaultConnector is the default edge style.
	DefaultConnector = string(sink.ConnectorCurve)

	// DefaultScale is the default raster scale for PNG output.
	DefaultScale = 1.0

	// DefaultMaxScale caps the raster scale.
	DefaultMaxScale = 8.0
)

// Renderers select the backend for svg, png and pdf output. dot and json
// are always produced natively.
const (
	RendererNative   = "native"
	RendererGraphviz = "graphviz"
	RendererChrome   = "chrome"
)

// DefaultRenderer is the default rendering backend.
const DefaultRenderer = RendererNative

// Renderers lists the rendering backends.
var Renderers = []string{RendererNative, RendererGraphviz, RendererChrome}

// Connectors lists the edge styles.
var Connectors = []string{
	string(sink.ConnectorCurve),
	string(sink.ConnectorElbow),
	string(sink.ConnectorStraight),
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. It doubles as the
// JSON body of API requests.
type Options struct {
	// Parse options

	// Style is laid over the document style when parsing. Its node part
	// becomes the default for nodes without their own style; the paddings
	// also apply to mindmaps built in code.
	Style    *document.StyleSpec `json:"style,omitempty"`
	MaxDepth int                 `json:"max_depth,omitempty"`
	MaxNodes int                 `json:"max_nodes,omitempty"`

	// Layout options
	Engine  string   `json:"engine,omitempty"`
	Margin  *float64 `json:"margin,omitempty"` // nil means layout.DefaultMargin
	Refresh bool     `json:"refresh,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	Connector string   `json:"connector,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Renderer  string   `json:"renderer,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"` // DOT labels carry sizes

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the positioned mindmap.
	Layout graph.Layout

	// DocHash identifies the laid-out document and its layout options.
	DocHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Depth      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are known output formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme exists.
func ValidateTheme(name string) error {
	_, err := sink.ThemeByName(name)
	return err
}

// ValidateConnector checks that a connector style exists.
func ValidateConnector(name string) error {
	if !slices.Contains(Connectors, name) {
		return apperrors.New(apperrors.ErrCodeInvalidStyle, "unknown connector %q (use %v)", name, Connectors)
	}
	return nil
}

// ValidateRenderer checks that a renderer exists.
func ValidateRenderer(name string) error {
	if !slices.Contains(Renderers, name) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown renderer %q (use %v)", name, Renderers)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates and applies defaults for the full
// pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxNodes == 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	if o.Engine == "" {
		o.Engine = layout.DefaultEngine
	}
	if o.Margin == nil {
		m := layout.DefaultMargin
		o.Margin = &m
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := layout.Get(o.Engine); err != nil {
		return err
	}
	if err := apperrors.ValidateDimension("margin", *o.Margin); err != nil {
		return err
	}
	if s := o.Style; s != nil {
		if s.PaddingHorizontal != nil {
			if err := apperrors.ValidateDimension("padding_horizontal", *s.PaddingHorizontal); err != nil {
				return err
			}
		}
		if s.PaddingVertical != nil {
			if err := apperrors.ValidateDimension("padding_vertical", *s.PaddingVertical); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(render.FormatSVG)}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Connector == "" {
		o.Connector = DefaultConnector
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Renderer == "" {
		o.Renderer = DefaultRenderer
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering. Format names
// are normalized to lower case and de-duplicated.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()

	formats := make([]string, 0, len(o.Formats))
	for _, name := range o.Formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		if !slices.Contains(formats, string(f)) {
			formats = append(formats, string(f))
		}
	}
	o.Formats = formats

	if err := ValidateTheme(o.Theme); err != nil {
		return err
	}
	if err := ValidateConnector(o.Connector); err != nil {
		return err
	}
	if err := ValidateRenderer(o.Renderer); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > DefaultMaxScale {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", DefaultMaxScale, o.Scale)
	}
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation. Call
// after ValidateForLayout.
func (o *Options) LayoutKeyOpts(style mindmap.Style) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine:            o.Engine,
		Margin:            *o.Margin,
		PaddingHorizontal: style.PaddingHorizontal,
		PaddingVertical:   style.PaddingVertical,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch render.Format(format) {
	case render.FormatSVG, render.FormatPNG, render.FormatPDF:
		k.Theme = o.Theme
		k.Connector = o.Connector
		k.EmbedFont = o.EmbedFont
		k.Renderer = o.Renderer
		if format == string(render.FormatPNG) {
			k.Scale = o.Scale
		}
	case render.FormatDOT:
		k.Detailed = o.Detailed
	}
	return k
}

// applyStyle lays the padding overrides over s.
func (o *Options) applyStyle(s *mindmap.Style) {
	if o.Style == nil {
		return
	}
	if v := o.Style.PaddingHorizontal; v != nil {
		s.PaddingHorizontal = *v
	}
	if v := o.Style.PaddingVertical; v != nil {
		s.PaddingVertical = *v
	}
}
