// Package layout positions the nodes of a mindmap.
//
// # Overview
//
// Layout is a two pass process over a [mindmap.Mindmap]:
//
//  1. [ComputeSizes] walks the tree bottom-up, estimating every node's
//     intrinsic box and aggregating the box needed by its descendants.
//  2. An [Engine] walks the tree top-down and assigns every node a center
//     relative to an origin on the root's horizontal axis.
//
// [Finalize] then translates those relative centers so the whole drawing
// starts at (margin, margin), and [Run] chains all three steps.
//
// # Left-Right Engine
//
// [LeftRight] is the classic mindmap fan-out: the root's children are divided
// by [Split] into a right forest and a left forest. Each forest grows
// outward from the root, children stacked vertically and centered on their
// parent. The root is placed last, at the vertical midpoint of its direct
// children.
//
//	m := mindmap.New(root)
//	bounds, err := layout.Run(m, layout.Options{Margin: 20})
//
// The layout mutates the tree in place and is deterministic: running it twice
// on an unchanged tree yields identical positions. Callers must not lay out
// the same tree from several goroutines at once.
//
// # Depth
//
// The size pass uses an explicit stack. Placement recurses once per level, so
// callers accepting untrusted documents should bound the depth first. The
// pipeline package does so before every layout.
package layout
