// Package render turns laid-out mindmaps into images.
//
// # Overview
//
// Renderers consume an immutable [graph.Layout], so one layout can be
// rendered to several formats concurrently. The package provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Mindmap drawings in the [sink] subpackage (SVG, native PNG, PDF,
//     headless-Chrome PNG, JSON)
//   - Graphviz node-link diagrams in the [nodelink] subpackage
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink.RenderPNG] rasterizes natively and needs no external tool.
package render
