package layout

import (
	"math"

	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// Side is the horizontal direction a branch grows toward.
type Side int

// Sides of the root.
const (
	Right Side = 1
	Left  Side = -1
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// LeftRight fans the root's children out to both sides of the root.
type LeftRight struct{}

// Name implements [Engine].
func (LeftRight) Name() string { return "leftright" }

// Layout implements [Engine].
func (LeftRight) Layout(m *mindmap.Mindmap) {
	if m.IsEmpty() {
		return
	}
	root := m.Root
	hPad, vPad := m.Style.PaddingHorizontal, m.Style.PaddingVertical

	right, left := Split(root.Children)
	placeTree(right, hPad, vPad, geom.Zero(), root.IntrinsicSize, Right)
	placeTree(left, hPad, vPad, geom.Zero(), root.IntrinsicSize, Left)

	root.SetRelativePosition(positionParent(root.Children))
}

// placeTree stacks a forest of top-level branches below a running cursor that
// starts at zero, each branch centered on its own vertical extent.
func placeTree(forest []*mindmap.Node, hPad, vPad float64, origin geom.Point, parentSize geom.Size, side Side) {
	cursor := 0.0
	for _, n := range forest {
		center := geom.Pt(origin.X, cursor+n.Extent()/2)
		used := placeNode(n, center, parentSize, side, hPad, vPad)
		cursor += used + vPad
	}
}

// placeNode positions n next to its parent and recurses into its children.
// parent carries the parent's x and the vertical center chosen for n. It
// returns the vertical space n's subtree occupies.
func placeNode(n *mindmap.Node, parent geom.Point, parentSize geom.Size, side Side, hPad, vPad float64) float64 {
	x := parent.X + float64(side)*(n.IntrinsicSize.Width/2+hPad+parentSize.Width/2)
	pos := geom.Pt(x, parent.Y)
	n.SetRelativePosition(pos)

	cursor := pos.Y - n.SubtreeSize.Height/2
	for _, c := range n.Children {
		extent := c.Extent()
		placeNode(c, geom.Pt(pos.X, cursor+extent/2), n.IntrinsicSize, side, hPad, vPad)
		cursor += extent + vPad
	}
	return n.Extent()
}

// positionParent centers a parent vertically between the top of its highest
// child box and the bottom of its lowest one, at x = 0. Without children the
// parent sits at the origin.
func positionParent(children []*mindmap.Node) geom.Point {
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, c := range children {
		p, ok := c.RelativePosition()
		if !ok {
			continue
		}
		half := c.IntrinsicSize.Height / 2
		top = math.Min(top, p.Y-half)
		bottom = math.Max(bottom, p.Y+half)
	}
	if math.IsInf(top, 1) {
		return geom.Zero()
	}
	return geom.Pt(0, (top+bottom)/2)
}
