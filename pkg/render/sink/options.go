package sink

// Connector selects how parent-child edges are drawn.
type Connector string

// Connector styles.
const (
	ConnectorCurve    Connector = "curve"
	ConnectorElbow    Connector = "elbow"
	ConnectorStraight Connector = "straight"
)

// Option configures a renderer. Options that do not apply to a renderer are
// ignored by it.
type Option func(*options)

type options struct {
	theme       Theme
	connector   Connector
	scale       float64
	embedFont   bool
	supersample int
}

func newOptions(opts ...Option) options {
	o := options{theme: ThemeLight, connector: ConnectorCurve, scale: 1, supersample: 2}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	if o.supersample < 1 {
		o.supersample = 1
	}
	return o
}

// WithTheme sets the color scheme.
func WithTheme(t Theme) Option { return func(o *options) { o.theme = t } }

// WithConnectors sets the edge style. Unknown styles fall back to curves.
func WithConnectors(c Connector) Option { return func(o *options) { o.connector = c } }

// WithScale sets the pixel density of raster output (2 = retina).
func WithScale(s float64) Option { return func(o *options) { o.scale = s } }

// WithEmbeddedFont embeds the Go Regular face in SVG output so the drawing
// looks the same in every viewer.
func WithEmbeddedFont() Option { return func(o *options) { o.embedFont = true } }

// WithSupersampling sets the raster oversampling factor (1 disables it).
func WithSupersampling(n int) Option { return func(o *options) { o.supersample = n } }
