package graph

import (
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

func laidOut(t *testing.T) (*mindmap.Mindmap, Layout) {
	t.Helper()
	root := mindmap.NewNode("Trip").AddChild(
		mindmap.NewNode("Flights").AddChild(mindmap.NewNode("Outbound"), mindmap.NewNode("Return")),
		mindmap.NewNode("Hotel"),
		mindmap.NewNode("Budget"),
	)
	root.Children[1].Image = &mindmap.Image{URL: "https://example.com/h.png", Width: 40}
	m := mindmap.New(root)
	m.Metadata.Title = "Trip"

	canvas, err := layout.Run(m, layout.Options{Margin: 10})
	if err != nil {
		t.Fatalf("layout.Run: %v", err)
	}
	l, err := FromMindmap(m, canvas, layout.DefaultEngine, 10)
	if err != nil {
		t.Fatalf("FromMindmap: %v", err)
	}
	return m, l
}

func TestFromMindmap(t *testing.T) {
	m, l := laidOut(t)

	if len(l.Boxes) != m.Count() {
		t.Fatalf("boxes = %d, want %d", len(l.Boxes), m.Count())
	}
	if len(l.Edges) != m.Count()-1 {
		t.Errorf("edges = %d, want %d", len(l.Edges), m.Count()-1)
	}
	if l.Title != "Trip" || l.Engine != "leftright" || l.Margin != 10 {
		t.Errorf("header = %+v", l)
	}

	wantIDs := []string{"0", "0.0", "0.0.0", "0.0.1", "0.1", "0.2"}
	for i, id := range wantIDs {
		if l.Boxes[i].ID != id {
			t.Errorf("box %d id = %q, want %q", i, l.Boxes[i].ID, id)
		}
	}

	sides := map[string]string{"0": SideRoot, "0.0": SideRight, "0.0.0": SideRight, "0.1": SideRight, "0.2": SideLeft}
	for id, want := range sides {
		b, ok := l.Box(id)
		if !ok {
			t.Fatalf("missing box %s", id)
		}
		if b.Side != want {
			t.Errorf("box %s side = %s, want %s", id, b.Side, want)
		}
	}

	hotel, _ := l.Box("0.1")
	if hotel.Image == nil || hotel.Image.Height != mindmap.DefaultImageHeight || hotel.Image.Position != "left" {
		t.Errorf("hotel image = %+v", hotel.Image)
	}

	for _, b := range l.Boxes {
		r := b.Rect()
		if r.Min.X < l.Margin-1e-9 || r.Min.Y < l.Margin-1e-9 || r.Max.X > l.Width || r.Max.Y > l.Height {
			t.Errorf("box %s %v outside canvas %vx%v", b.ID, r, l.Width, l.Height)
		}
	}
}

func TestFromMindmapKeepsIDs(t *testing.T) {
	root := mindmap.NewNode("r").AddChild(mindmap.NewNode("a"))
	root.ID = "root"
	m := mindmap.New(root)
	canvas, _ := layout.Run(m, layout.Options{})

	l, err := FromMindmap(m, canvas, "leftright", 0)
	if err != nil {
		t.Fatalf("FromMindmap: %v", err)
	}
	if l.Boxes[0].ID != "root" || l.Boxes[1].ID != "root.0" {
		t.Errorf("ids = %s, %s", l.Boxes[0].ID, l.Boxes[1].ID)
	}
	if l.Edges[0] != (Edge{From: "root", To: "root.0"}) {
		t.Errorf("edge = %+v", l.Edges[0])
	}
}

func TestFromMindmapErrors(t *testing.T) {
	m := mindmap.New(mindmap.NewNode("r").AddChild(mindmap.NewNode("a")))
	if _, err := FromMindmap(m, geom.Rect{}, "", 0); !apperrors.Is(err, apperrors.ErrCodePositionUnset) {
		t.Errorf("expected POSITION_UNSET before layout, got %v", err)
	}

	dup := mindmap.New(mindmap.NewNode("r").AddChild(mindmap.NewNode("a"), mindmap.NewNode("b")))
	dup.Root.Children[0].ID = "same"
	dup.Root.Children[1].ID = "same"
	canvas, _ := layout.Run(dup, layout.Options{})
	if _, err := FromMindmap(dup, canvas, "", 0); !apperrors.Is(err, apperrors.ErrCodeInvalidDocument) {
		t.Errorf("expected INVALID_DOCUMENT for duplicate ids, got %v", err)
	}
}

func TestFromMindmapEmpty(t *testing.T) {
	l, err := FromMindmap(mindmap.New(nil), geom.Rect{}, "leftright", 0)
	if err != nil {
		t.Fatalf("FromMindmap: %v", err)
	}
	if !l.IsEmpty() || l.Root() != nil {
		t.Error("empty mindmap should give an empty layout")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	_, l := laidOut(t)
	path := filepath.Join(t.TempDir(), "trip.layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if len(got.Boxes) != len(l.Boxes) || got.Width != l.Width || got.Height != l.Height {
		t.Errorf("round trip changed layout: %+v", got)
	}
	if got.Root().X != l.Boxes[0].X || got.Root().Y != l.Boxes[0].Y {
		t.Errorf("root moved: %+v", got.Root())
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", `{"boxes": [`, "unmarshal layout"},
		{"no canvas", `{"boxes": [{"id": "a"}]}`, "canvas"},
		{"negative size", `{"width": -1, "height": 10}`, "non-negative"},
		{"missing id", `{"width": 10, "height": 10, "boxes": [{"label": "a"}]}`, "without id"},
		{"duplicate id", `{"width": 10, "height": 10, "boxes": [{"id": "a"}, {"id": "a"}]}`, "duplicate"},
		{"dangling edge", `{"width": 10, "height": 10, "boxes": [{"id": "a"}], "edges": [{"from": "a", "to": "b"}]}`, "unknown box"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "nope.json"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestMarshalLayoutIsIndented(t *testing.T) {
	_, l := laidOut(t)
	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"engine\": \"leftright\"") {
		t.Errorf("unexpected encoding:\n%s", data)
	}
}
