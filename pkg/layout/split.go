package layout

import "github.com/matzehuels/mindtree/pkg/mindmap"

// Split divides the root's children into the forest drawn to the right of
// the root and the forest drawn to its left. The first ceil(n/2) children go
// right and the rest go left, both keeping their input order.
//
// The returned slices share the backing array of children.
func Split(children []*mindmap.Node) (right, left []*mindmap.Node) {
	mid := (len(children) + 1) / 2
	return children[:mid:mid], children[mid:]
}
