package mindmap

import (
	"strconv"
)

// Metadata describes the document a mindmap came from.
type Metadata struct {
	Title       string
	Author      string
	Description string
}

// Mindmap is a rooted tree plus its mindmap-wide style.
// A nil Root is a valid, empty mindmap.
type Mindmap struct {
	Root     *Node
	Style    Style
	Metadata Metadata
}

// New returns a mindmap with the given root and the default style.
func New(root *Node) *Mindmap {
	if root != nil {
		root.Link()
	}
	return &Mindmap{Root: root, Style: DefaultStyle()}
}

// IsEmpty reports whether the mindmap has no root.
func (m *Mindmap) IsEmpty() bool { return m == nil || m.Root == nil }

// Walk visits every node in pre-order (parent before children, children in
// order). fn receives the node and its depth (root = 0); returning false skips
// that node's children.
func (m *Mindmap) Walk(fn func(n *Node, depth int) bool) {
	if m.IsEmpty() {
		return
	}
	m.Root.Walk(fn)
}

// Count returns the number of nodes in the mindmap.
func (m *Mindmap) Count() int {
	if m.IsEmpty() {
		return 0
	}
	return m.Root.Count()
}

// Depth returns the number of levels in the mindmap (0 when empty).
func (m *Mindmap) Depth() int {
	if m.IsEmpty() {
		return 0
	}
	return m.Root.Depth()
}

// Clone returns a deep copy of the mindmap with layout fields reset.
func (m *Mindmap) Clone() *Mindmap {
	out := &Mindmap{Style: m.Style, Metadata: m.Metadata}
	if m.Root != nil {
		out.Root = m.Root.Clone()
	}
	return out
}

type frame struct {
	node  *Node
	depth int
}

// Walk visits n and its descendants in pre-order without recursion.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}

// PostOrder visits n and its descendants children-first without recursion.
// Siblings are visited in order and a parent always after all of its children.
func (n *Node) PostOrder(fn func(n *Node)) {
	type entry struct {
		node     *Node
		expanded bool
	}
	stack := []entry{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded || top.node.IsLeaf() {
			stack = stack[:len(stack)-1]
			fn(top.node)
			continue
		}
		top.expanded = true
		kids := top.node.Children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, entry{node: kids[i]})
		}
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the subtree rooted at n.
func (n *Node) Depth() int {
	deepest := 0
	n.Walk(func(_ *Node, d int) bool {
		if d+1 > deepest {
			deepest = d + 1
		}
		return true
	})
	return deepest
}

// AssignIDs gives every node without an ID a path identifier: the root is
// "0" and the i-th child of node "p" is "p.i".
func (n *Node) AssignIDs() {
	type item struct {
		node *Node
		path string
	}
	stack := []item{{n, "0"}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node.ID == "" {
			it.node.ID = it.path
		}
		for i, c := range it.node.Children {
			stack = append(stack, item{c, it.path + "." + strconv.Itoa(i)})
		}
	}
}

// Clone returns a deep copy of the subtree rooted at n. Layout fields are
// reset and the copy is linked as a new root.
func (n *Node) Clone() *Node {
	cp := cloneShallow(n)
	type pair struct{ src, dst *Node }
	stack := []pair{{n, cp}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.Children) == 0 {
			continue
		}
		p.dst.Children = make([]*Node, len(p.src.Children))
		for i, c := range p.src.Children {
			cc := cloneShallow(c)
			cc.parent = p.dst
			p.dst.Children[i] = cc
			stack = append(stack, pair{c, cc})
		}
	}
	return cp
}

func cloneShallow(n *Node) *Node {
	cp := &Node{ID: n.ID, Text: n.Text, Style: n.Style}
	if n.Image != nil {
		img := *n.Image
		cp.Image = &img
	}
	return cp
}
