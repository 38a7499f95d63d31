package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
	"github.com/matzehuels/mindtree/pkg/render/sink"
)

func ExampleRenderSVG() {
	m := mindmap.New(mindmap.NewNode("Root").AddChild(
		mindmap.NewNode("A"),
		mindmap.NewNode("B"),
	))
	canvas, _ := layout.Run(m, layout.Options{Margin: 20})
	l, _ := graph.FromMindmap(m, canvas, layout.DefaultEngine, 20)

	svg := string(sink.RenderSVG(l, sink.WithTheme(sink.ThemeDark)))

	fmt.Println("SVG starts with:", svg[:4])
	fmt.Println("Nodes:", strings.Count(svg, `class="node `))
	fmt.Println("Edges:", strings.Count(svg, `class="edge"`))
	// Output:
	// SVG starts with: <svg
	// Nodes: 3
	// Edges: 2
}
