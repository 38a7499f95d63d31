package mindmap

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/mindtree/pkg/geom"
)

// Text metric approximations relative to the font size.
const (
	charWidthInset  = 4.0
	charHeightInset = 2.0
	lineSpacing     = 4.0
)

// DefaultImageHeight is used for images that do not declare a height.
const DefaultImageHeight = 50.0

// TextSize approximates the box taken by the node's text when offsetWidth of
// the node's MaxWidth is already used by other content.
//
// With wrapping enabled the text is broken into
// ceil(textWidth / (MaxWidth - offsetWidth)) lines; otherwise it is one line.
// The available width never drops below one character. A non-positive
// MaxWidth disables wrapping.
//
// Text length is counted in runes rather than UTF-8 bytes, so multibyte
// characters are as wide as ASCII ones.
func (n *Node) TextSize(offsetWidth float64) geom.Size {
	s := n.Style
	charW := math.Max(s.FontSize-charWidthInset, 0)
	charH := math.Max(s.FontSize-charHeightInset, 0)

	width := float64(utf8.RuneCountInString(n.Text)) * charW
	if !s.TextWrapping || s.MaxWidth <= 0 {
		return geom.Size{Width: width, Height: charH + lineSpacing}
	}

	avail := math.Max(s.MaxWidth-offsetWidth, charW)
	var lines float64
	if avail > 0 {
		lines = math.Ceil(width / avail)
	}
	return geom.Size{Width: width, Height: lines * (charH + lineSpacing)}
}

// ImageSize returns the image footprint capped at MaxWidth, or zero when the
// node has no image.
func (n *Node) ImageSize() geom.Size {
	if n.Image == nil {
		return geom.Size{}
	}
	w := math.Max(n.Image.Width, 0)
	h := n.Image.Height
	if h <= 0 {
		h = DefaultImageHeight
	}
	if limit := n.Style.MaxWidth; limit > 0 {
		w = math.Min(w, limit)
		h = math.Min(h, limit)
	}
	return geom.Size{Width: w, Height: h}
}

// ImagePosition returns the effective image placement.
func (n *Node) ImagePosition() ImagePosition {
	if n.Image == nil || n.Image.Position == "" {
		return ImageLeft
	}
	return n.Image.Position
}

// EstimateSize computes the node's intrinsic size from its content and style.
// It does not modify the node.
//
// Image and text are combined side by side (left/right placement, separated
// by Padding) or stacked (top/bottom placement, separated by Padding). The box
// then gains Padding on every side and is clamped: width is raised to
// MinWidth, capped to MaxWidth only when wrapping (unwrapped text may exceed
// it), and height is raised to MinHeight.
func (n *Node) EstimateSize() geom.Size {
	s := n.Style
	pad := math.Max(s.Padding, 0)
	img := n.ImageSize()

	var content geom.Size
	if n.ImagePosition().Horizontal() {
		txt := n.TextSize(img.Width)
		content = geom.Size{
			Width:  txt.Width + img.Width + pad,
			Height: math.Max(txt.Height, img.Height),
		}
	} else {
		txt := n.TextSize(pad)
		content = geom.Size{
			Width:  math.Max(txt.Width, img.Width),
			Height: txt.Height + img.Height + pad,
		}
	}

	w := content.Width + pad*2
	switch {
	case w < s.MinWidth:
		w = s.MinWidth
	case s.TextWrapping && s.MaxWidth > 0 && w > s.MaxWidth:
		w = s.MaxWidth
	}

	h := content.Height + pad*2
	if h < s.MinHeight {
		h = s.MinHeight
	}

	return geom.Size{Width: w, Height: h}
}

// AggregateSubtree computes the box needed by n's descendants from the sizes
// already stored on its children. Callers must process children first
// (post-order). For a leaf it returns IntrinsicSize.
//
// The height is the sum over children of max(child subtree, child intrinsic)
// plus vPad after every child, the last one included. The width is the widest
// child box plus that child's own descendants plus hPad.
func (n *Node) AggregateSubtree(vPad, hPad float64) geom.Size {
	if n.IsLeaf() {
		return n.IntrinsicSize
	}

	var out geom.Size
	for _, c := range n.Children {
		out.Height += c.Extent() + vPad
		out.Width = math.Max(out.Width, c.IntrinsicSize.Width+c.descendantWidth()+hPad)
	}
	return out
}
