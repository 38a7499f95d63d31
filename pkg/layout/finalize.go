package layout

import (
	"math"

	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// Bounds returns the union of every placed node box, in relative
// coordinates. Unplaced nodes are ignored; the result is geom.Empty() when
// nothing is placed.
func Bounds(m *mindmap.Mindmap) geom.Rect {
	r := geom.Empty()
	m.Walk(func(n *mindmap.Node, _ int) bool {
		if b, ok := n.Bounds(); ok {
			r = r.Union(b)
		}
		return true
	})
	return r
}

// Finalize translates every relative position so the drawing's top-left
// corner lands on (margin, margin) and stores the result as the node's final
// position. It returns the canvas rectangle, drawing plus margin on every
// side, starting at the origin.
//
// Every node must have been placed by an engine first.
func Finalize(m *mindmap.Mindmap, margin float64) (geom.Rect, error) {
	if m.IsEmpty() {
		return geom.Rect{}, nil
	}
	margin = math.Max(margin, 0)

	bounds := Bounds(m)
	if bounds.IsEmpty() {
		bounds = geom.Rect{}
	}
	offset := bounds.Min.Sub(geom.Pt(margin, margin))

	var err error
	m.Walk(func(n *mindmap.Node, _ int) bool {
		if err != nil {
			return false
		}
		err = n.SetFinalPosition(offset)
		return err == nil
	})
	if err != nil {
		return geom.Rect{}, err
	}

	size := bounds.Size()
	return geom.Rect{
		Max: geom.Pt(size.Width+2*margin, size.Height+2*margin),
	}, nil
}
