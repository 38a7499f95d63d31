package pipeline

import (
	"errors"
	"io/fs"
	"os"

	"github.com/matzehuels/mindtree/pkg/document"
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// Parse decodes a document and resolves it into a mindmap, laying
// opts.Style over the document style first. The tree shape is checked
// against opts.MaxDepth and opts.MaxNodes.
func Parse(data []byte, format document.Format, opts Options) (*mindmap.Mindmap, error) {
	opts.SetLayoutDefaults()

	doc, err := document.Decode(data, format)
	if err != nil {
		return nil, err
	}
	doc.Style = overlayStyle(doc.Style, opts.Style)

	m, err := doc.Mindmap()
	if err != nil {
		return nil, err
	}
	if err := apperrors.ValidateTreeShape(m.Depth(), m.Count(), opts.MaxDepth, opts.MaxNodes); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseFile reads and parses a document file. The format comes from the
// file extension.
func ParseFile(path string, opts Options) (*mindmap.Mindmap, error) {
	format, err := document.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Parse(data, format, opts)
}

// overlayStyle returns base with the non-nil fields of over applied.
// Neither argument is modified.
func overlayStyle(base, over *document.StyleSpec) *document.StyleSpec {
	if over == nil {
		return base
	}
	out := &document.StyleSpec{}
	if base != nil {
		*out = *base
	}
	if over.PaddingHorizontal != nil {
		out.PaddingHorizontal = over.PaddingHorizontal
	}
	if over.PaddingVertical != nil {
		out.PaddingVertical = over.PaddingVertical
	}
	if over.Node != nil {
		node := &document.NodeStyleSpec{}
		if out.Node != nil {
			*node = *out.Node
		}
		o := over.Node
		if o.Padding != nil {
			node.Padding = o.Padding
		}
		if o.MinWidth != nil {
			node.MinWidth = o.MinWidth
		}
		if o.MaxWidth != nil {
			node.MaxWidth = o.MaxWidth
		}
		if o.MinHeight != nil {
			node.MinHeight = o.MinHeight
		}
		if o.FontSize != nil {
			node.FontSize = o.FontSize
		}
		if o.TextWrapping != nil {
			node.TextWrapping = o.TextWrapping
		}
		out.Node = node
	}
	return out
}
