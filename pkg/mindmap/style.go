package mindmap

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultPadding is the inner padding of a node box.
	DefaultPadding = 10.0

	// DefaultMinWidth is the smallest width a node box may have.
	DefaultMinWidth = 60.0

	// DefaultMaxWidth caps wrapped text and image widths.
	DefaultMaxWidth = 300.0

	// DefaultMinHeight is the smallest height a node box may have.
	DefaultMinHeight = 30.0

	// DefaultFontSize is the nominal font size used for text metrics.
	DefaultFontSize = 16.0

	// DefaultPaddingHorizontal is the gap between a parent box and its children.
	DefaultPaddingHorizontal = 40.0

	// DefaultPaddingVertical is the gap stacked after every sibling subtree.
	DefaultPaddingVertical = 20.0
)

// NodeStyle holds the resolved style parameters of a single node.
// All values are plain numbers; theme resolution happens before layout.
type NodeStyle struct {
	Padding      float64 `json:"padding" toml:"padding" yaml:"padding" bson:"padding"`
	MinWidth     float64 `json:"min_width" toml:"min_width" yaml:"min_width" bson:"min_width"`
	MaxWidth     float64 `json:"max_width" toml:"max_width" yaml:"max_width" bson:"max_width"`
	MinHeight    float64 `json:"min_height" toml:"min_height" yaml:"min_height" bson:"min_height"`
	FontSize     float64 `json:"font_size" toml:"font_size" yaml:"font_size" bson:"font_size"`
	TextWrapping bool    `json:"text_wrapping" toml:"text_wrapping" yaml:"text_wrapping" bson:"text_wrapping"`
}

// DefaultNodeStyle returns the style applied when a document specifies none.
func DefaultNodeStyle() NodeStyle {
	return NodeStyle{
		Padding:      DefaultPadding,
		MinWidth:     DefaultMinWidth,
		MaxWidth:     DefaultMaxWidth,
		MinHeight:    DefaultMinHeight,
		FontSize:     DefaultFontSize,
		TextWrapping: true,
	}
}

// Style holds mindmap-wide layout parameters.
type Style struct {
	// PaddingHorizontal separates a parent box from its children's boxes.
	PaddingHorizontal float64 `json:"padding_horizontal" toml:"padding_horizontal" yaml:"padding_horizontal" bson:"padding_horizontal"`

	// PaddingVertical is added after every child subtree when stacking.
	PaddingVertical float64 `json:"padding_vertical" toml:"padding_vertical" yaml:"padding_vertical" bson:"padding_vertical"`

	// Node is the default style for nodes that do not override it.
	Node NodeStyle `json:"node" toml:"node" yaml:"node" bson:"node"`
}

// DefaultStyle returns the default mindmap style.
func DefaultStyle() Style {
	return Style{
		PaddingHorizontal: DefaultPaddingHorizontal,
		PaddingVertical:   DefaultPaddingVertical,
		Node:              DefaultNodeStyle(),
	}
}
