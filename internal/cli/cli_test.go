package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mindtree/pkg/cache"
	"github.com/matzehuels/mindtree/pkg/graph"
)

const planYAML = `title: Plan
root:
  text: Root
  children:
    - text: A
    - text: B
`

// run executes the CLI with an isolated config and cache directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(home, "config.toml")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "plan.yaml", planYAML)

	if _, err := run(t, "layout", doc, "--no-cache"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := graph.ReadLayoutFile(filepath.Join(dir, "plan.layout.json"))
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 318 || l.Height != 78 || l.Title != "Plan" {
		t.Errorf("layout = %gx%g %q", l.Width, l.Height, l.Title)
	}
}

func TestLayoutCommandFlags(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "plan.yaml", planYAML)
	out := filepath.Join(dir, "wide.json")

	if _, err := run(t, "layout", doc, "-o", out, "--margin", "0", "--padding-h", "0"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := graph.ReadLayoutFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// 60 + 78 + 60 with no gaps and no margin.
	if l.Width != 198 || l.Margin != 0 {
		t.Errorf("layout width = %g, margin = %g", l.Width, l.Margin)
	}
}

func TestRenderAndVisualizeCommands(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "plan.yaml", planYAML)

	if _, err := run(t, "render", doc, "-f", "svg,dot"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"plan.svg", "plan.dot"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	if _, err := run(t, "layout", doc); err != nil {
		t.Fatalf("layout: %v", err)
	}
	out := filepath.Join(dir, "again.svg")
	if _, err := run(t, "visualize", filepath.Join(dir, "plan.layout.json"), "-o", out); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil || !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("visualize output: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "plan.yaml", planYAML)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"render", doc, "-f", "gif"}},
		{"unknown theme", []string{"render", doc, "--theme", "neon"}},
		{"missing file", []string{"render", filepath.Join(dir, "absent.yaml")}},
		{"too deep", []string{"layout", doc, "--max-depth", "1"}},
		{"unknown extension", []string{"layout", writeFile(t, dir, "plan.txt", planYAML)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPreviewPlain(t *testing.T) {
	doc := writeFile(t, t.TempDir(), "plan.yaml", planYAML)
	out, err := run(t, "preview", doc, "--plain", "--no-cache")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, want := range []string{"Root", "right", "left"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	out, err := run(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `backend = "file"`) {
		t.Errorf("config show:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := roundTrip(context.Background(), fc); err != nil {
		t.Fatalf("roundTrip: %v", err)
	}
	if err := fc.Set(context.Background(), "layout:1:abc", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}

	cfg := writeFile(t, t.TempDir(), "config.toml", "[cache]\nbackend = \"file\"\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", cfg, "cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := fc.Get(context.Background(), "layout:1:abc"); hit {
		t.Error("entry should be gone after cache clear")
	}
}
