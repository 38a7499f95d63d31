package sink

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/graph"
)

// Text metrics matching the layout estimator.
const (
	charWidthInset = 4.0
	lineGap        = 2.0
)

// content is the inside of a box split into text and image areas.
type content struct {
	text       geom.Rect
	image      geom.Rect
	hasImage   bool
	lines      []string
	lineHeight float64
	fontSize   float64
}

// layoutContent places a box's image and wrapped label inside its padding.
func layoutContent(b *graph.Box) content {
	inner := b.Rect().Inset(-b.Padding)
	c := content{text: inner, fontSize: b.FontSize, lineHeight: b.FontSize + lineGap}

	if img := b.Image; img != nil {
		c.hasImage = true
		size := geom.Sz(math.Min(img.Width, inner.Size().Width), math.Min(img.Height, inner.Size().Height))
		mid := inner.Center()
		gap := b.Padding
		switch img.Position {
		case "right":
			c.image = geom.RectAround(geom.Pt(inner.Max.X-size.Width/2, mid.Y), size)
			c.text.Max.X = c.image.Min.X - gap
		case "top":
			c.image = geom.RectAround(geom.Pt(mid.X, inner.Min.Y+size.Height/2), size)
			c.text.Min.Y = c.image.Max.Y + gap
		case "bottom":
			c.image = geom.RectAround(geom.Pt(mid.X, inner.Max.Y-size.Height/2), size)
			c.text.Max.Y = c.image.Min.Y - gap
		default:
			c.image = geom.RectAround(geom.Pt(inner.Min.X+size.Width/2, mid.Y), size)
			c.text.Min.X = c.image.Max.X + gap
		}
	}

	maxChars := 0
	if b.TextWrapping {
		charW := math.Max(b.FontSize-charWidthInset, 1)
		maxChars = max(int(c.text.Size().Width/charW), 1)
	}
	c.lines = wrapText(b.Label, maxChars)
	return c
}

// lineCenters returns the vertical center of every label line.
func (c content) lineCenters() []float64 {
	mid := c.text.Center().Y
	n := len(c.lines)
	out := make([]float64, n)
	for i := range out {
		out[i] = mid + (float64(i)-float64(n-1)/2)*c.lineHeight
	}
	return out
}

// wrapText breaks s into lines of at most maxChars runes, preferring word
// boundaries. maxChars <= 0 disables wrapping. Explicit newlines are kept.
func wrapText(s string, maxChars int) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if maxChars <= 0 {
			lines = append(lines, para)
			continue
		}
		var cur strings.Builder
		curLen := 0
		flush := func() {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		for _, word := range strings.Fields(para) {
			for utf8.RuneCountInString(word) > maxChars {
				if curLen > 0 {
					flush()
				}
				head, tail := splitRunes(word, maxChars)
				lines = append(lines, head)
				word = tail
			}
			wl := utf8.RuneCountInString(word)
			if curLen > 0 && curLen+1+wl > maxChars {
				flush()
			}
			if curLen > 0 {
				cur.WriteByte(' ')
				curLen++
			}
			cur.WriteString(word)
			curLen += wl
		}
		if curLen > 0 || len(strings.Fields(para)) == 0 {
			flush()
		}
	}
	return lines
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}

// connectorEnds returns where an edge leaves the parent and enters the
// child: the facing vertical sides, at each box's vertical center.
func connectorEnds(from, to *graph.Box) (start, end geom.Point) {
	dir := 1.0
	if to.X < from.X {
		dir = -1
	}
	start = geom.Pt(from.X+dir*from.Width/2, from.Y)
	end = geom.Pt(to.X-dir*to.Width/2, to.Y)
	return start, end
}

// connectorPath samples a connector into a polyline of n+1 points.
func connectorPath(style Connector, start, end geom.Point, n int) []geom.Point {
	midX := (start.X + end.X) / 2
	switch style {
	case ConnectorStraight:
		return []geom.Point{start, end}
	case ConnectorElbow:
		return []geom.Point{start, geom.Pt(midX, start.Y), geom.Pt(midX, end.Y), end}
	}
	c1, c2 := geom.Pt(midX, start.Y), geom.Pt(midX, end.Y)
	pts := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pts = append(pts, geom.Pt(
			u*u*u*start.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*end.X,
			u*u*u*start.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*end.Y,
		))
	}
	return pts
}
