// Package fonts provides the font used by the raster and vector renderers.
//
// Both renderers use Go Regular (golang.org/x/image/font/gofont/goregular),
// which is compiled into the binary, so PNG output needs no system fonts and
// SVG output can embed the very same face.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name used for the embedded face.
const FontFamily = "Go Regular"

// FallbackFontFamily lists fallbacks for viewers that ignore embedded fonts.
const FallbackFontFamily = `'Go Regular', 'Helvetica Neue', Arial, sans-serif`

// TTF returns the raw TrueType data.
func TTF() []byte {
	return goregular.TTF
}

// Parsed font and base64 data are computed once on first access.
var (
	parsed     *opentype.Font
	parsedErr  error
	parsedOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// TTFBase64 returns the TrueType data as a base64 string, suitable for a
// CSS @font-face data URI.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Face returns a Go Regular face at the given size in pixels. Callers own the
// face and should Close it.
func Face(size float64) (font.Face, error) {
	parsedOnce.Do(func() {
		parsed, parsedErr = opentype.Parse(goregular.TTF)
	})
	if parsedErr != nil {
		return nil, parsedErr
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// MeasureString returns the advance width of s in pixels.
func MeasureString(face font.Face, s string) float64 {
	adv := font.MeasureString(face, s)
	return float64(adv) / 64
}
