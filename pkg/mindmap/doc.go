// Package mindmap defines the tree model consumed by the layout engine.
//
// A [Mindmap] owns a single root [Node]. Each node carries its content (text
// and an optional [Image]), a resolved [NodeStyle], its ordered children, and
// the geometry fields populated by layout:
//
//   - IntrinsicSize: the node's own content box, see [Node.EstimateSize]
//   - SubtreeSize: the box needed by the node's descendants, see
//     [Node.AggregateSubtree]
//   - relative position: set by the layout engine around an implicit origin
//   - final position: relative position translated by a caller-chosen offset,
//     see [Node.SetFinalPosition]
//
// # Size Estimation
//
// Text metrics are approximated from the font size rather than measured:
// a character is FontSize-4 wide and FontSize-2 tall, and lines are separated
// by 4 units. This keeps layout independent of installed fonts and makes the
// result reproducible across machines.
//
// # Ownership
//
// Children are owned by their parent through the Children slice. The parent
// back-reference is non-owning and only answers [Node.IsRoot]; layout never
// walks upward. Call [Node.Link] after building a tree by hand or after
// decoding so that parent pointers are consistent.
//
// Trees are not safe for concurrent mutation. A layout pass assumes exclusive
// access to the tree for its duration.
package mindmap
