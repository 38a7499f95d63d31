package mindmap

import (
	"slices"
	"testing"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/geom"
)

// sample builds:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
func sample() *Mindmap {
	a := NewNode("a").AddChild(NewNode("a1"), NewNode("a2"))
	root := NewNode("root").AddChild(a, NewNode("b"))
	return New(root)
}

func texts(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Text
	}
	return out
}

func TestWalkPreOrder(t *testing.T) {
	m := sample()
	var got []*Node
	var depths []int
	m.Walk(func(n *Node, d int) bool {
		got = append(got, n)
		depths = append(depths, d)
		return true
	})

	want := []string{"root", "a", "a1", "a2", "b"}
	if !slices.Equal(texts(got), want) {
		t.Errorf("Walk order = %v, want %v", texts(got), want)
	}
	if !slices.Equal(depths, []int{0, 1, 2, 2, 1}) {
		t.Errorf("depths = %v", depths)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	m := sample()
	var got []*Node
	m.Walk(func(n *Node, _ int) bool {
		got = append(got, n)
		return n.Text != "a"
	})
	if want := []string{"root", "a", "b"}; !slices.Equal(texts(got), want) {
		t.Errorf("Walk order = %v, want %v", texts(got), want)
	}
}

func TestPostOrder(t *testing.T) {
	m := sample()
	var got []*Node
	m.Root.PostOrder(func(n *Node) { got = append(got, n) })

	want := []string{"a1", "a2", "a", "b", "root"}
	if !slices.Equal(texts(got), want) {
		t.Errorf("PostOrder = %v, want %v", texts(got), want)
	}
}

func TestCountDepth(t *testing.T) {
	m := sample()
	if got := m.Count(); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
	if got := m.Depth(); got != 3 {
		t.Errorf("Depth = %d, want 3", got)
	}

	var empty *Mindmap
	if empty.Count() != 0 || empty.Depth() != 0 || !empty.IsEmpty() {
		t.Error("nil mindmap should be empty")
	}
}

func TestParentLinks(t *testing.T) {
	m := sample()
	if !m.Root.IsRoot() {
		t.Error("root should be a root")
	}
	a := m.Root.Children[0]
	if a.IsRoot() || a.Parent() != m.Root {
		t.Error("a should point at root")
	}
	if a.Children[1].Parent() != a {
		t.Error("a2 should point at a")
	}

	// Nodes assembled without AddChild get linked by Link.
	loose := &Node{Text: "x", Children: []*Node{{Text: "y"}}}
	if loose.Children[0].Parent() != nil {
		t.Fatal("unlinked child should have no parent")
	}
	loose.Link()
	if loose.Children[0].Parent() != loose {
		t.Error("Link should set parent")
	}
}

func TestAssignIDs(t *testing.T) {
	m := sample()
	m.Root.Children[1].ID = "custom"
	m.Root.AssignIDs()

	var ids []string
	m.Walk(func(n *Node, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	want := []string{"0", "0.0", "0.0.0", "0.0.1", "custom"}
	if !slices.Equal(ids, want) {
		t.Errorf("IDs = %v, want %v", ids, want)
	}
}

func TestClone(t *testing.T) {
	m := sample()
	m.Root.Children[0].Image = &Image{Width: 10}
	m.Root.IntrinsicSize = geom.Sz(1, 1)

	cp := m.Clone()
	if cp.Count() != m.Count() {
		t.Fatalf("clone count = %d", cp.Count())
	}
	if !cp.Root.IntrinsicSize.IsZero() {
		t.Error("clone should reset layout fields")
	}
	if cp.Root.Children[0].Parent() != cp.Root {
		t.Error("clone should be linked")
	}

	cp.Root.Children[0].Image.Width = 99
	cp.Root.Children[0].Text = "changed"
	if m.Root.Children[0].Image.Width != 10 || m.Root.Children[0].Text != "a" {
		t.Error("clone should not share state with the original")
	}
}

func TestFinalPosition(t *testing.T) {
	n := NewNode("x")

	err := n.SetFinalPosition(geom.Pt(1, 1))
	if !apperrors.Is(err, apperrors.ErrCodePositionUnset) {
		t.Fatalf("expected POSITION_UNSET, got %v", err)
	}
	if _, ok := n.FinalPosition(); ok {
		t.Error("final position should stay unset after a failed call")
	}

	n.SetRelativePosition(geom.Pt(10, 20))
	if err := n.SetFinalPosition(geom.Pt(5, -5)); err != nil {
		t.Fatalf("SetFinalPosition: %v", err)
	}
	if p, ok := n.FinalPosition(); !ok || p != geom.Pt(5, 25) {
		t.Errorf("FinalPosition = %v, %v", p, ok)
	}
}

func TestImagePosition(t *testing.T) {
	if !ImagePosition("").Horizontal() || !ImageRight.Horizontal() {
		t.Error("left/right placements are horizontal")
	}
	if ImageTop.Horizontal() || ImageBottom.Horizontal() {
		t.Error("top/bottom placements are vertical")
	}
	if ImagePosition("diagonal").Valid() {
		t.Error("unknown placement should be invalid")
	}
}
