package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/fonts"
	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/graph"
)

// curveSegments is the number of segments used to rasterize a curve.
const curveSegments = 24

// maxPixels bounds the supersampled canvas.
const maxPixels = 64 << 20

// canvas holds raster state. All coordinates passed to its methods are in
// layout units and multiplied by k.
type canvas struct {
	img   *image.RGBA
	k     float64
	faces map[float64]font.Face
}

// RenderPNG rasterizes the layout without external tools. The drawing is
// rendered at the supersampling factor and downsampled with Catmull-Rom.
// Images are drawn as placeholders; nothing is fetched.
func RenderPNG(l graph.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	w := int(math.Ceil(l.Width * o.scale))
	h := int(math.Ceil(l.Height * o.scale))
	if w <= 0 || h <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "cannot rasterize an empty layout")
	}

	ss := o.supersample
	if w*ss*h*ss > maxPixels {
		ss = 1
	}
	if w*h > maxPixels {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "layout too large to rasterize (%dx%d px)", w, h)
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w*ss, h*ss)),
		k:     o.scale * float64(ss),
		faces: map[float64]font.Face{},
	}
	defer c.close()

	if err := c.paint(l, o); err != nil {
		return nil, err
	}

	out := c.img
	if ss > 1 {
		out = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (c *canvas) paint(l graph.Layout, o options) error {
	t := o.theme
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(mustHex(t.Background)), image.Point{}, draw.Src)

	idx := l.Index()
	edge := mustHex(t.Edge)
	for _, e := range l.Edges {
		from, to := idx[e.From], idx[e.To]
		if from == nil || to == nil {
			continue
		}
		start, end := connectorEnds(from, to)
		c.polyline(connectorPath(o.connector, start, end, curveSegments), 2, edge)
	}

	stroke, text := mustHex(t.Stroke), mustHex(t.Text)
	for i := range l.Boxes {
		b := &l.Boxes[i]
		r := b.Rect()
		c.roundRect(r, t.Radius, stroke)
		c.roundRect(r.Inset(-1.5), math.Max(t.Radius-1.5, 0), mustHex(t.Fill(b.Depth)))

		ct := layoutContent(b)
		if ct.hasImage {
			c.roundRect(ct.image, 0, stroke)
			c.roundRect(ct.image.Inset(-1), 0, color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff})
		}
		for j, y := range ct.lineCenters() {
			if err := c.text(ct.lines[j], geom.Pt(ct.text.Center().X, y), ct.fontSize, text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *canvas) close() {
	for _, f := range c.faces {
		f.Close()
	}
}

// roundRect fills r with corners of the given radius.
func (c *canvas) roundRect(r geom.Rect, radius float64, col color.RGBA) {
	x0, y0 := r.Min.X*c.k, r.Min.Y*c.k
	x1, y1 := r.Max.X*c.k, r.Max.Y*c.k
	rad := math.Min(radius*c.k, math.Min(x1-x0, y1-y0)/2)
	b := c.img.Bounds()

	for py := max(int(math.Floor(y0)), b.Min.Y); py < min(int(math.Ceil(y1)), b.Max.Y); py++ {
		fy := float64(py) + 0.5
		for px := max(int(math.Floor(x0)), b.Min.X); px < min(int(math.Ceil(x1)), b.Max.X); px++ {
			fx := float64(px) + 0.5
			if fx < x0 || fx > x1 || fy < y0 || fy > y1 {
				continue
			}
			cx := math.Max(x0+rad, math.Min(fx, x1-rad))
			cy := math.Max(y0+rad, math.Min(fy, y1-rad))
			if dx, dy := fx-cx, fy-cy; dx*dx+dy*dy > rad*rad {
				continue
			}
			c.img.SetRGBA(px, py, col)
		}
	}
}

// polyline strokes consecutive points with a round pen of the given width.
func (c *canvas) polyline(pts []geom.Point, width float64, col color.RGBA) {
	r := width * c.k / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1].Scale(c.k), pts[i].Scale(c.k)
		steps := max(int(math.Hypot(b.X-a.X, b.Y-a.Y)/math.Max(r/2, 0.5)), 1)
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			c.dot(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, r, col)
		}
	}
}

func (c *canvas) dot(x, y, r float64, col color.RGBA) {
	b := c.img.Bounds()
	for py := max(int(y-r), b.Min.Y); py <= min(int(y+r), b.Max.Y-1); py++ {
		for px := max(int(x-r), b.Min.X); px <= min(int(x+r), b.Max.X-1); px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= r*r {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// text draws s centered on p.
func (c *canvas) text(s string, p geom.Point, size float64, col color.RGBA) error {
	if s == "" || size <= 0 {
		return nil
	}
	px := size * c.k
	face, ok := c.faces[px]
	if !ok {
		var err error
		face, err = fonts.Face(px)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "load font")
		}
		c.faces[px] = face
	}

	m := face.Metrics()
	width := fonts.MeasureString(face, s)
	baseline := p.Y*c.k + float64(m.Ascent-m.Descent)/64/2
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6((p.X*c.k - width/2) * 64), Y: fixed.Int26_6(baseline * 64)},
	}
	d.DrawString(s)
	return nil
}
