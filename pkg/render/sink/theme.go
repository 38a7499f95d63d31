package sink

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
)

// Theme is a color scheme. Colors are CSS hex strings (#rrggbb).
type Theme struct {
	Name       string
	Background string
	Fills      []string // indexed by depth, cycled
	Stroke     string
	Text       string
	Edge       string
	Radius     float64
}

// Built-in themes.
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: "#ffffff",
		Fills:      []string{"#fde68a", "#bfdbfe", "#bbf7d0", "#fecaca", "#e9d5ff"},
		Stroke:     "#334155",
		Text:       "#0f172a",
		Edge:       "#64748b",
		Radius:     8,
	}
	ThemeDark = Theme{
		Name:       "dark",
		Background: "#0f172a",
		Fills:      []string{"#b45309", "#1d4ed8", "#15803d", "#b91c1c", "#7e22ce"},
		Stroke:     "#e2e8f0",
		Text:       "#f8fafc",
		Edge:       "#94a3b8",
		Radius:     8,
	}
	ThemeMono = Theme{
		Name:       "mono",
		Background: "#ffffff",
		Fills:      []string{"#ffffff"},
		Stroke:     "#000000",
		Text:       "#000000",
		Edge:       "#000000",
		Radius:     0,
	}
)

var themes = map[string]Theme{
	ThemeLight.Name: ThemeLight,
	ThemeDark.Name:  ThemeDark,
	ThemeMono.Name:  ThemeMono,
}

// ThemeByName looks up a built-in theme. An empty name selects ThemeLight.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return ThemeLight, nil
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Fill returns the fill color for a box at the given depth.
func (t Theme) Fill(depth int) string {
	if len(t.Fills) == 0 {
		return t.Background
	}
	return t.Fills[depth%len(t.Fills)]
}

// parseHex converts #rgb or #rrggbb to an opaque color.
func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// mustHex is parseHex for built-in values; bad input renders magenta.
func mustHex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
