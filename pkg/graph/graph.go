package graph

import (
	"slices"
	"strconv"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// FromMindmap snapshots a finalized mindmap. canvas is the rectangle
// returned by layout.Run; engine and margin are recorded as-is.
//
// Nodes without an ID get their path ID ("0", "0.1", ...). Every node must
// carry a final position.
func FromMindmap(m *mindmap.Mindmap, canvas geom.Rect, engine string, margin float64) (Layout, error) {
	size := canvas.Size()
	out := Layout{
		Engine: engine,
		Title:  m.Metadata.Title,
		Width:  size.Width,
		Height: size.Height,
		Margin: margin,
	}
	if m.IsEmpty() {
		return out, nil
	}

	right, _ := layout.Split(m.Root.Children)

	type item struct {
		node   *mindmap.Node
		id     string
		depth  int
		side   string
		parent string
	}
	seen := map[string]bool{}
	stack := []item{{m.Root, idOr(m.Root, "0"), 0, SideRoot, ""}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[it.id] {
			return Layout{}, apperrors.New(apperrors.ErrCodeInvalidDocument, "duplicate node id %q", it.id)
		}
		seen[it.id] = true

		box, err := newBox(it.node, it.id, it.depth, it.side)
		if err != nil {
			return Layout{}, err
		}
		out.Boxes = append(out.Boxes, box)
		if it.parent != "" {
			out.Edges = append(out.Edges, Edge{From: it.parent, To: it.id})
		}

		kids := it.node.Children
		for i := len(kids) - 1; i >= 0; i-- {
			c := kids[i]
			side := it.side
			if it.depth == 0 {
				side = SideLeft
				if slices.Contains(right, c) {
					side = SideRight
				}
			}
			stack = append(stack, item{c, idOr(c, it.id+"."+strconv.Itoa(i)), it.depth + 1, side, it.id})
		}
	}

	return out, nil
}

func newBox(n *mindmap.Node, id string, depth int, side string) (Box, error) {
	p, ok := n.FinalPosition()
	if !ok {
		return Box{}, apperrors.New(apperrors.ErrCodePositionUnset, "node %q was not laid out", id)
	}
	box := Box{
		ID:           id,
		Label:        n.Text,
		X:            p.X,
		Y:            p.Y,
		Width:        n.IntrinsicSize.Width,
		Height:       n.IntrinsicSize.Height,
		Depth:        depth,
		Side:         side,
		FontSize:     n.Style.FontSize,
		Padding:      n.Style.Padding,
		TextWrapping: n.Style.TextWrapping,
	}
	if n.Image != nil {
		s := n.ImageSize()
		box.Image = &Image{
			URL:      n.Image.URL,
			Width:    s.Width,
			Height:   s.Height,
			Position: string(n.ImagePosition()),
		}
	}
	return box, nil
}

func idOr(n *mindmap.Node, fallback string) string {
	if n.ID != "" {
		return n.ID
	}
	return fallback
}
