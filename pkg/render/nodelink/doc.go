// Package nodelink renders a mindmap layout as a Graphviz node-link diagram.
//
// # Overview
//
// The DOT output pins every node at the position computed by the mindmap
// layout (pos="x,y!"), so Graphviz only draws: boxes stay exactly where the
// layout engine put them and edges are routed as splines between them. This
// is handy for feeding a mindmap into existing Graphviz tooling.
//
// # Usage
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// Rendering uses the neato engine, which honors pinned positions, through
// the WebAssembly build of Graphviz bundled by go-graphviz. No system
// Graphviz is needed.
package nodelink
