package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/mindtree/pkg/fonts"
	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/graph"
)

const svgCSS = `
    .edge { fill: none; stroke-width: 2; stroke-linecap: round; }
    .node rect.box { stroke-width: 1.5; }
    .node text { text-anchor: middle; dominant-baseline: central; }
    .node .placeholder { fill: none; stroke-dasharray: 4 3; }`

// RenderSVG draws the layout as a standalone SVG document.
func RenderSVG(l graph.Layout, opts ...Option) []byte {
	o := newOptions(opts...)
	t := o.theme

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if l.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(l.Title))
	}
	renderDefs(&buf, o)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", t.Background)

	idx := l.Index()
	buf.WriteString(`  <g class="edges">` + "\n")
	for _, e := range l.Edges {
		from, to := idx[e.From], idx[e.To]
		if from == nil || to == nil {
			continue
		}
		fmt.Fprintf(&buf, `    <path class="edge" d="%s" stroke="%s"/>`+"\n", edgePath(o.connector, from, to), t.Edge)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="nodes">` + "\n")
	for i := range l.Boxes {
		renderBox(&buf, &l.Boxes[i], t)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, o options) {
	buf.WriteString("  <style>")
	if o.embedFont {
		fmt.Fprintf(buf, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.TTFBase64())
	}
	fmt.Fprintf(buf, "\n    .node text { font-family: %s; }", fonts.FallbackFontFamily)
	buf.WriteString(svgCSS)
	buf.WriteString("\n  </style>\n")
}

func edgePath(style Connector, from, to *graph.Box) string {
	start, end := connectorEnds(from, to)
	midX := (start.X + end.X) / 2
	switch style {
	case ConnectorStraight:
		return fmt.Sprintf("M %.1f %.1f L %.1f %.1f", start.X, start.Y, end.X, end.Y)
	case ConnectorElbow:
		return fmt.Sprintf("M %.1f %.1f H %.1f V %.1f H %.1f", start.X, start.Y, midX, end.Y, end.X)
	}
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		start.X, start.Y, midX, start.Y, midX, end.Y, end.X, end.Y)
}

func renderBox(buf *bytes.Buffer, b *graph.Box, t Theme) {
	r := b.Rect()
	fmt.Fprintf(buf, `    <g id="node-%s" class="node depth-%d side-%s">`+"\n", html.EscapeString(b.ID), b.Depth, b.Side)
	fmt.Fprintf(buf, `      <rect class="box" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s"/>`+"\n",
		r.Min.X, r.Min.Y, b.Width, b.Height, t.Radius, t.Fill(b.Depth), t.Stroke)

	c := layoutContent(b)
	if c.hasImage {
		renderImage(buf, b, c.image, t)
	}
	for i, y := range c.lineCenters() {
		fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%s</text>`+"\n",
			c.text.Center().X, y, c.fontSize, t.Text, html.EscapeString(c.lines[i]))
	}
	buf.WriteString("    </g>\n")
}

func renderImage(buf *bytes.Buffer, b *graph.Box, r geom.Rect, t Theme) {
	s := r.Size()
	if b.Image.URL == "" {
		fmt.Fprintf(buf, `      <rect class="placeholder" x="%.1f" y="%.1f" width="%.1f" height="%.1f" stroke="%s"/>`+"\n",
			r.Min.X, r.Min.Y, s.Width, s.Height, t.Stroke)
		return
	}
	fmt.Fprintf(buf, `      <image href="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" preserveAspectRatio="xMidYMid meet"/>`+"\n",
		html.EscapeString(b.Image.URL), r.Min.X, r.Min.Y, s.Width, s.Height)
}
