package mindmap

import (
	"fmt"

	"github.com/matzehuels/mindtree/pkg/geom"
)

// ImagePosition places a node's image relative to its text.
type ImagePosition string

// Image placements. Left and right stack image and text horizontally; top and
// bottom stack them vertically.
const (
	ImageLeft   ImagePosition = "left"
	ImageRight  ImagePosition = "right"
	ImageTop    ImagePosition = "top"
	ImageBottom ImagePosition = "bottom"
)

// Horizontal reports whether image and text sit side by side.
func (p ImagePosition) Horizontal() bool {
	return p != ImageTop && p != ImageBottom
}

// Valid reports whether p is a known placement. The empty value is valid and
// means ImageLeft.
func (p ImagePosition) Valid() bool {
	switch p {
	case "", ImageLeft, ImageRight, ImageTop, ImageBottom:
		return true
	}
	return false
}

// Image describes an image attached to a node. Only its footprint matters to
// layout; decoding happens elsewhere.
type Image struct {
	URL      string
	Width    float64
	Height   float64 // zero means DefaultImageHeight
	Position ImagePosition
}

// Node is one entry of the mindmap tree.
type Node struct {
	ID       string
	Text     string
	Image    *Image
	Style    NodeStyle
	Children []*Node

	// IntrinsicSize is the node's own content box.
	IntrinsicSize geom.Size
	// SubtreeSize is the box needed by the node's descendants, padding
	// included. For a leaf it equals IntrinsicSize.
	SubtreeSize geom.Size

	positionRelative *geom.Point
	positionFinal    *geom.Point

	parent *Node
}

// NewNode returns a node with the given text and the default style.
func NewNode(text string) *Node {
	return &Node{Text: text, Style: DefaultNodeStyle()}
}

// AddChild appends children to n and points their parent reference at n.
// It returns n for chaining.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Link sets the parent reference of every node below n. n itself becomes a
// root.
func (n *Node) Link() {
	n.parent = nil
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range cur.Children {
			c.parent = cur
			stack = append(stack, c)
		}
	}
}

// Extent is the vertical space n occupies when stacked among its siblings.
func (n *Node) Extent() float64 {
	if n.SubtreeSize.Height > n.IntrinsicSize.Height {
		return n.SubtreeSize.Height
	}
	return n.IntrinsicSize.Height
}

// descendantWidth is the horizontal extent of the node's descendants. Leaves
// have none even though their SubtreeSize mirrors IntrinsicSize.
func (n *Node) descendantWidth() float64 {
	if n.IsLeaf() {
		return 0
	}
	return n.SubtreeSize.Width
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s %q)", n.ID, n.Text)
}
