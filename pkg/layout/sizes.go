package layout

import "github.com/matzehuels/mindtree/pkg/mindmap"

// ComputeSizes fills IntrinsicSize and SubtreeSize on every node of m.
// Children are always processed before their parent, so each aggregation
// sees final child sizes. An empty mindmap is left untouched.
func ComputeSizes(m *mindmap.Mindmap) {
	if m.IsEmpty() {
		return
	}
	vPad, hPad := m.Style.PaddingVertical, m.Style.PaddingHorizontal
	m.Root.PostOrder(func(n *mindmap.Node) {
		n.IntrinsicSize = n.EstimateSize()
		n.SubtreeSize = n.AggregateSubtree(vPad, hPad)
	})
}
