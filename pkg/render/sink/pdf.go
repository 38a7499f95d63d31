package sink

import (
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/render"
)

// RenderPDF draws the layout as SVG and converts it with rsvg-convert.
// The Go Regular face is always embedded so the PDF does not depend on
// installed fonts.
func RenderPDF(l graph.Layout, opts ...Option) ([]byte, error) {
	opts = append(opts, WithEmbeddedFont())
	return render.ToPDF(RenderSVG(l, opts...))
}
