package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mindtree/pkg/graph"
)

func sampleLayout() graph.Layout {
	return graph.Layout{
		Engine: "leftright",
		Width:  400,
		Height: 100,
		Boxes: []graph.Box{
			{ID: "0", Label: "Root", X: 200, Y: 50, Width: 80, Height: 40, Side: graph.SideRoot, FontSize: 16},
			{ID: "0.0", Label: "Right \"quoted\"", X: 330, Y: 50, Width: 100, Height: 40, Depth: 1, Side: graph.SideRight},
			{ID: "0.1", Label: "Left", X: 70, Y: 30, Width: 100, Height: 40, Depth: 1, Side: graph.SideLeft},
		},
		Edges: []graph.Edge{{From: "0", To: "0.0"}, {From: "0", To: "0.1"}},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleLayout(), Options{})

	for _, want := range []string{
		"digraph G",
		"layout=neato",
		`"0" [label="Root", pos="200,50!", width=1.1111111111111112, height=0.5555555555555556, fontsize=16, penwidth=2];`,
		`label="Right \"quoted\""`,
		`pos="70,70!"`,
		`"0" -> "0.0";`,
		`"0" -> "0.1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleLayout(), Options{Detailed: true})
	if !strings.Contains(dot, `Left\nid: 0.1\ndepth: 1`) {
		t.Errorf("ToDOT() detailed output missing id and depth\n%s", dot)
	}
}

func TestFmtLabel_Simple(t *testing.T) {
	b := graph.Box{ID: "x", Label: "Label"}
	if got := fmtLabel(b, false); got != "Label" {
		t.Errorf("fmtLabel() = %q, want %q", got, "Label")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz wasm start-up is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sampleLayout(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.HasPrefix(s, "<") || !strings.Contains(s, "<svg") {
		t.Fatalf("not an svg: %.80s", s)
	}
	if !strings.Contains(s, "Root") {
		t.Error("svg should contain the root label")
	}
}
