package graph_test

import (
	"fmt"

	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

func ExampleFromMindmap() {
	m := mindmap.New(mindmap.NewNode("Root").AddChild(
		mindmap.NewNode("A"),
		mindmap.NewNode("B"),
	))
	canvas, _ := layout.Run(m, layout.Options{Margin: 20})

	l, err := graph.FromMindmap(m, canvas, layout.DefaultEngine, 20)
	if err != nil {
		panic(err)
	}

	fmt.Printf("canvas %gx%g\n", l.Width, l.Height)
	for _, b := range l.Boxes {
		fmt.Printf("%s %-5s (%g, %g)\n", b.ID, b.Side, b.X, b.Y)
	}
	// Output:
	// canvas 318x78
	// 0 root  (159, 39)
	// 0.0 right (268, 39)
	// 0.1 left  (50, 39)
}
