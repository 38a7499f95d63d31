package document

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

func TestReadFile(t *testing.T) {
	tests := []struct {
		file      string
		count     int
		hPad      float64
		vPad      float64
		fontSize  float64
		minWidth  float64
		lastChild string
	}{
		{"launch.yaml", 5, 30, mindmap.DefaultPaddingVertical, 14, mindmap.DefaultMinWidth, "Engineering"},
		{"launch.json", 3, mindmap.DefaultPaddingHorizontal, 12, mindmap.DefaultFontSize, mindmap.DefaultMinWidth, "Engineering"},
		{"launch.toml", 4, 30, mindmap.DefaultPaddingVertical, mindmap.DefaultFontSize, 80, "Engineering"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, err := ReadFile(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if m.Metadata.Title != "Launch" {
				t.Errorf("title = %q", m.Metadata.Title)
			}
			if got := m.Count(); got != tt.count {
				t.Errorf("Count = %d, want %d", got, tt.count)
			}
			if m.Style.PaddingHorizontal != tt.hPad || m.Style.PaddingVertical != tt.vPad {
				t.Errorf("paddings = %v/%v", m.Style.PaddingHorizontal, m.Style.PaddingVertical)
			}
			if m.Root.Style.FontSize != tt.fontSize || m.Root.Style.MinWidth != tt.minWidth {
				t.Errorf("root style = %+v", m.Root.Style)
			}
			last := m.Root.Children[len(m.Root.Children)-1]
			if last.Text != tt.lastChild || last.Parent() != m.Root {
				t.Errorf("last child = %v", last)
			}
		})
	}
}

func TestNodeStyleOverrides(t *testing.T) {
	m, err := ReadFile(filepath.Join("testdata", "launch.yaml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	eng := m.Root.Children[1]
	if eng.Style.TextWrapping {
		t.Error("node override should disable wrapping")
	}
	if eng.Style.FontSize != 14 {
		t.Errorf("node should inherit the document font size, got %v", eng.Style.FontSize)
	}
	if eng.Image == nil || eng.Image.Position != mindmap.ImageTop || eng.Image.Width != 40 {
		t.Errorf("image = %+v", eng.Image)
	}
	if !m.Root.Children[0].Style.TextWrapping {
		t.Error("siblings should keep the default wrapping")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   apperrors.Code
	}{
		{"malformed json", `{"root":`, FormatJSON, apperrors.ErrCodeInvalidDocument},
		{"unknown json field", `{"roots": {}}`, FormatJSON, apperrors.ErrCodeInvalidDocument},
		{"unknown yaml field", "root:\n  txt: x\n", FormatYAML, apperrors.ErrCodeInvalidDocument},
		{"unknown toml field", "[root]\nlabel = \"x\"\n", FormatTOML, apperrors.ErrCodeInvalidDocument},
		{"unknown format", `{}`, Format("xml"), apperrors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !apperrors.Is(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		code apperrors.Code
	}{
		{"negative padding", `{"style": {"padding_vertical": -1}}`, apperrors.ErrCodeInvalidStyle},
		{"inverted widths", `{"root": {"text": "x", "style": {"min_width": 400, "max_width": 100}}}`, apperrors.ErrCodeInvalidStyle},
		{"bad image position", `{"root": {"image": {"position": "behind"}}}`, apperrors.ErrCodeInvalidDocument},
		{"bad image url", `{"root": {"image": {"url": "ftp://x/y.png"}}}`, apperrors.ErrCodeInvalidInput},
		{"control characters", `{"root": {"text": "a\u0007b"}}`, apperrors.ErrCodeInvalidDocument},
		{"null child", `{"root": {"children": [null]}}`, apperrors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data), FormatJSON)
			if !apperrors.Is(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestLoadEmptyRoot(t *testing.T) {
	m, err := Load([]byte(`{"title": "nothing"}`), FormatJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !m.IsEmpty() {
		t.Error("document without root should give an empty mindmap")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src, err := ReadFile(filepath.Join("testdata", "launch.yaml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(src, format)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Load(data, format)
			if err != nil {
				t.Fatalf("Load: %v\n%s", err, data)
			}
			if got.Style != src.Style || got.Metadata != src.Metadata {
				t.Errorf("style/metadata changed: %+v", got.Style)
			}

			var want, have []mindmap.Node
			src.Walk(func(n *mindmap.Node, _ int) bool {
				want = append(want, mindmap.Node{Text: n.Text, Style: n.Style})
				return true
			})
			got.Walk(func(n *mindmap.Node, _ int) bool {
				have = append(have, mindmap.Node{Text: n.Text, Style: n.Style})
				return true
			})
			if len(want) != len(have) {
				t.Fatalf("node count %d != %d", len(have), len(want))
			}
			for i := range want {
				if want[i].Text != have[i].Text || want[i].Style != have[i].Style {
					t.Errorf("node %d: %q %+v, want %q %+v", i, have[i].Text, have[i].Style, want[i].Text, want[i].Style)
				}
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	m := mindmap.New(mindmap.NewNode("root").AddChild(mindmap.NewNode("child")))
	path := filepath.Join(t.TempDir(), "out.toml")
	if err := WriteFile(m, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	if err := WriteFile(m, filepath.Join(t.TempDir(), "out")); !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for a path without extension, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON}, {".JSON", FormatJSON}, {"yml", FormatYAML}, {"yaml", FormatYAML}, {"toml", FormatTOML},
	}
	for _, tt := range tests {
		if got, err := ParseFormat(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
	if _, err := ParseFormat("ini"); err == nil {
		t.Error("expected error for ini")
	}
}
