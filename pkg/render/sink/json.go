package sink

import "github.com/matzehuels/mindtree/pkg/graph"

// RenderJSON returns the layout itself, pretty-printed.
func RenderJSON(l graph.Layout) ([]byte, error) {
	return graph.MarshalLayout(l)
}
