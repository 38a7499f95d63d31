package document

import (
	"strconv"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// Mindmap resolves the document into a linked mindmap with plain style
// values on every node. Text, images and styles are validated on the way.
// A document without a root yields an empty mindmap.
func (d *Document) Mindmap() (*mindmap.Mindmap, error) {
	style, err := d.resolveStyle()
	if err != nil {
		return nil, err
	}

	m := mindmap.New(nil)
	m.Style = style
	m.Metadata = mindmap.Metadata{Title: d.Title, Author: d.Author, Description: d.Description}
	if d.Root == nil {
		return m, nil
	}

	type item struct {
		spec *NodeSpec
		node *mindmap.Node
		path string
	}

	root, err := resolveNode(d.Root, style.Node, "root")
	if err != nil {
		return nil, err
	}
	stack := []item{{d.Root, root, "root"}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, cs := range it.spec.Children {
			path := it.path + ".children[" + strconv.Itoa(i) + "]"
			if cs == nil {
				return nil, apperrors.New(apperrors.ErrCodeInvalidDocument, "%s: empty node", path)
			}
			child, err := resolveNode(cs, style.Node, path)
			if err != nil {
				return nil, err
			}
			it.node.AddChild(child)
			stack = append(stack, item{cs, child, path})
		}
	}

	m.Root = root
	return m, nil
}

func (d *Document) resolveStyle() (mindmap.Style, error) {
	style := mindmap.DefaultStyle()
	if d.Style == nil {
		return style, nil
	}
	if v := d.Style.PaddingHorizontal; v != nil {
		style.PaddingHorizontal = *v
	}
	if v := d.Style.PaddingVertical; v != nil {
		style.PaddingVertical = *v
	}
	if err := apperrors.ValidateDimension("padding_horizontal", style.PaddingHorizontal); err != nil {
		return style, err
	}
	if err := apperrors.ValidateDimension("padding_vertical", style.PaddingVertical); err != nil {
		return style, err
	}

	node, err := ApplyNodeStyle(style.Node, d.Style.Node)
	if err != nil {
		return style, apperrors.Wrap(apperrors.ErrCodeInvalidStyle, err, "style.node")
	}
	style.Node = node
	return style, nil
}

func resolveNode(spec *NodeSpec, base mindmap.NodeStyle, path string) (*mindmap.Node, error) {
	if err := apperrors.ValidateText(spec.Text); err != nil {
		return nil, apperrors.Wrap(apperrors.GetCode(err), err, "%s", path)
	}

	style, err := ApplyNodeStyle(base, spec.Style)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidStyle, err, "%s.style", path)
	}

	n := &mindmap.Node{ID: spec.ID, Text: spec.Text, Style: style}
	if img := spec.Image; img != nil {
		pos := mindmap.ImagePosition(img.Position)
		if !pos.Valid() {
			return nil, apperrors.New(apperrors.ErrCodeInvalidDocument, "%s.image: unknown position %q", path, img.Position)
		}
		if err := apperrors.ValidateURL(img.URL); err != nil {
			return nil, apperrors.Wrap(apperrors.GetCode(err), err, "%s.image", path)
		}
		if err := apperrors.ValidateDimension("width", img.Width); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "%s.image", path)
		}
		if err := apperrors.ValidateDimension("height", img.Height); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "%s.image", path)
		}
		n.Image = &mindmap.Image{URL: img.URL, Width: img.Width, Height: img.Height, Position: pos}
	}
	return n, nil
}

// ApplyNodeStyle lays the non-nil fields of spec over base and validates
// the result.
func ApplyNodeStyle(base mindmap.NodeStyle, spec *NodeStyleSpec) (mindmap.NodeStyle, error) {
	out := base
	if spec != nil {
		setFloat(&out.Padding, spec.Padding)
		setFloat(&out.MinWidth, spec.MinWidth)
		setFloat(&out.MaxWidth, spec.MaxWidth)
		setFloat(&out.MinHeight, spec.MinHeight)
		setFloat(&out.FontSize, spec.FontSize)
		if spec.TextWrapping != nil {
			out.TextWrapping = *spec.TextWrapping
		}
	}
	return out, ValidateNodeStyle(out)
}

// ValidateNodeStyle checks every dimension of s and that its width range is
// ordered.
func ValidateNodeStyle(s mindmap.NodeStyle) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"padding", s.Padding},
		{"min_width", s.MinWidth},
		{"max_width", s.MaxWidth},
		{"min_height", s.MinHeight},
		{"font_size", s.FontSize},
	}
	for _, f := range fields {
		if err := apperrors.ValidateDimension(f.name, f.v); err != nil {
			return err
		}
	}
	return apperrors.ValidateWidthRange(s.MinWidth, s.MaxWidth)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// =============================================================================
// Mindmap -> Document
// =============================================================================

// FromMindmap converts m back to a document. Node styles equal to the
// mindmap default are omitted; differing ones are written in full.
func FromMindmap(m *mindmap.Mindmap) *Document {
	doc := &Document{
		Title:       m.Metadata.Title,
		Author:      m.Metadata.Author,
		Description: m.Metadata.Description,
		Style: &StyleSpec{
			PaddingHorizontal: ptr(m.Style.PaddingHorizontal),
			PaddingVertical:   ptr(m.Style.PaddingVertical),
			Node:              nodeStyleSpec(m.Style.Node),
		},
	}
	if m.IsEmpty() {
		return doc
	}

	type pair struct {
		node *mindmap.Node
		spec *NodeSpec
	}
	convert := func(n *mindmap.Node) *NodeSpec {
		spec := &NodeSpec{ID: n.ID, Text: n.Text}
		if n.Style != m.Style.Node {
			spec.Style = nodeStyleSpec(n.Style)
		}
		if img := n.Image; img != nil {
			spec.Image = &ImageSpec{URL: img.URL, Width: img.Width, Height: img.Height, Position: string(img.Position)}
		}
		return spec
	}

	doc.Root = convert(m.Root)
	stack := []pair{{m.Root, doc.Root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range p.node.Children {
			cs := convert(c)
			p.spec.Children = append(p.spec.Children, cs)
			stack = append(stack, pair{c, cs})
		}
	}
	return doc
}

func nodeStyleSpec(s mindmap.NodeStyle) *NodeStyleSpec {
	return &NodeStyleSpec{
		Padding:      ptr(s.Padding),
		MinWidth:     ptr(s.MinWidth),
		MaxWidth:     ptr(s.MaxWidth),
		MinHeight:    ptr(s.MinHeight),
		FontSize:     ptr(s.FontSize),
		TextWrapping: ptr(s.TextWrapping),
	}
}

func ptr[T any](v T) *T { return &v }
