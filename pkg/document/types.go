package document

// Document is the serialized form of a mindmap.
type Document struct {
	Title       string     `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Author      string     `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Style       *StyleSpec `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Root        *NodeSpec  `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
}

// StyleSpec is the mindmap-wide style. Nil fields keep their defaults.
type StyleSpec struct {
	PaddingHorizontal *float64       `json:"padding_horizontal,omitempty" yaml:"padding_horizontal,omitempty" toml:"padding_horizontal,omitempty"`
	PaddingVertical   *float64       `json:"padding_vertical,omitempty" yaml:"padding_vertical,omitempty" toml:"padding_vertical,omitempty"`
	Node              *NodeStyleSpec `json:"node,omitempty" yaml:"node,omitempty" toml:"node,omitempty"`
}

// NodeStyleSpec overrides individual node style fields.
type NodeStyleSpec struct {
	Padding      *float64 `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	MinWidth     *float64 `json:"min_width,omitempty" yaml:"min_width,omitempty" toml:"min_width,omitempty"`
	MaxWidth     *float64 `json:"max_width,omitempty" yaml:"max_width,omitempty" toml:"max_width,omitempty"`
	MinHeight    *float64 `json:"min_height,omitempty" yaml:"min_height,omitempty" toml:"min_height,omitempty"`
	FontSize     *float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" toml:"font_size,omitempty"`
	TextWrapping *bool    `json:"text_wrapping,omitempty" yaml:"text_wrapping,omitempty" toml:"text_wrapping,omitempty"`
}

// NodeSpec is one node of the document tree.
type NodeSpec struct {
	ID       string         `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Image    *ImageSpec     `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Style    *NodeStyleSpec `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Children []*NodeSpec    `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// ImageSpec describes a node image.
type ImageSpec struct {
	URL      string  `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Position string  `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
}
