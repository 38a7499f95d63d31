// Package sink draws a laid-out mindmap.
//
// Every renderer takes a [graph.Layout] and a list of [Option] values:
//
//	svg := sink.RenderSVG(l, sink.WithTheme(sink.ThemeDark))
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(l)
//
// [RenderSVG] and [RenderPNG] are self-contained. [RenderPDF] shells out to
// rsvg-convert, and [RenderPNGChrome] drives a headless Chrome through
// chromedp for pixel-exact browser output.
//
// # Drawing Model
//
// Boxes are rounded rectangles filled by depth from the theme palette.
// Connectors leave the parent on the side facing the child and enter the
// child on the side facing the parent, so both halves of the mindmap mirror
// each other. Labels are wrapped with the same character metrics the layout
// engine uses to size boxes, which keeps text inside its box.
package sink
