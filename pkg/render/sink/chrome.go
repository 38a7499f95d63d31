package sink

import (
	"context"
	"encoding/base64"
	"math"

	"github.com/chromedp/chromedp"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
)

// RenderPNGChrome screenshots the SVG drawing in headless Chrome. It needs a
// Chrome or Chromium binary; ctx bounds the whole browser session.
func RenderPNGChrome(ctx context.Context, l graph.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	svg := RenderSVG(l, append(opts, WithEmbeddedFont())...)
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	w, h := int64(math.Ceil(l.Width)), int64(math.Ceil(l.Height))
	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(max(w, 1), max(h, 1), chromedp.EmulateScale(o.scale)),
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnsupported, err, "headless chrome render")
	}
	if len(shot) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "headless chrome returned an empty screenshot")
	}
	return shot, nil
}
