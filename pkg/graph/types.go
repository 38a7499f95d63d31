package graph

import (
	"github.com/matzehuels/mindtree/pkg/geom"
)

// =============================================================================
// Constants
// =============================================================================

// Sides a box can sit on relative to the root.
const (
	SideRoot  = "root"
	SideRight = "right"
	SideLeft  = "left"
)

// =============================================================================
// Layout
// =============================================================================

// Layout is a positioned mindmap ready for rendering.
type Layout struct {
	Engine string  `json:"engine" bson:"engine"`
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Margin float64 `json:"margin" bson:"margin"`

	Boxes []Box  `json:"boxes" bson:"boxes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// IsEmpty reports whether the layout has no boxes.
func (l *Layout) IsEmpty() bool { return len(l.Boxes) == 0 }

// Root returns the root box, or nil for an empty layout.
func (l *Layout) Root() *Box {
	if l.IsEmpty() {
		return nil
	}
	return &l.Boxes[0]
}

// Box returns the box with the given ID.
func (l *Layout) Box(id string) (*Box, bool) {
	for i := range l.Boxes {
		if l.Boxes[i].ID == id {
			return &l.Boxes[i], true
		}
	}
	return nil, false
}

// Index maps box IDs to boxes.
func (l *Layout) Index() map[string]*Box {
	idx := make(map[string]*Box, len(l.Boxes))
	for i := range l.Boxes {
		idx[l.Boxes[i].ID] = &l.Boxes[i]
	}
	return idx
}

// =============================================================================
// Box
// =============================================================================

// Box is a positioned node. X and Y are the center in canvas coordinates.
type Box struct {
	ID     string  `json:"id" bson:"id"`
	Label  string  `json:"label" bson:"label"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Depth  int     `json:"depth" bson:"depth"`
	Side   string  `json:"side" bson:"side"`

	// Text rendering hints, copied from the node style.
	FontSize     float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`
	Padding      float64 `json:"padding,omitempty" bson:"padding,omitempty"`
	TextWrapping bool    `json:"text_wrapping,omitempty" bson:"text_wrapping,omitempty"`

	Image *Image `json:"image,omitempty" bson:"image,omitempty"`
}

// Image is the footprint of a node image inside its box.
type Image struct {
	URL      string  `json:"url,omitempty" bson:"url,omitempty"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Position string  `json:"position" bson:"position"`
}

// Center returns the box center.
func (b *Box) Center() geom.Point { return geom.Pt(b.X, b.Y) }

// Size returns the box dimensions.
func (b *Box) Size() geom.Size { return geom.Sz(b.Width, b.Height) }

// Rect returns the box outline.
func (b *Box) Rect() geom.Rect { return geom.RectAround(b.Center(), b.Size()) }

// =============================================================================
// Edge
// =============================================================================

// Edge connects a parent box to one of its children.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}
