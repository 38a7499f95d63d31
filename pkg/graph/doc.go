// Package graph provides the serialized form of a laid-out mindmap.
//
// This package defines the wire format shared by the CLI, the HTTP API, the
// caches and the layout store. Renderers only ever see a [Layout]; they never
// touch the mutable mindmap tree.
//
// # Architecture
//
// The package sits at the serialization boundary:
//
//   - pkg/mindmap.Mindmap: the tree, mutated in place by pkg/layout
//   - [Layout]: immutable snapshot of final positions (this package)
//
// Use [FromMindmap] after layout.Run to take the snapshot.
//
// # Core Types
//
//   - [Layout]: canvas size, engine and every positioned node
//   - [Box]: one node, centered at (X, Y) in canvas coordinates
//   - [Edge]: parent to child connection
//
// # Layout Serialization
//
//	data, _ := graph.MarshalLayout(l)          // Layout → []byte
//	l, err := graph.UnmarshalLayout(data)      // []byte → Layout (validated)
//	graph.WriteLayoutFile(l, "plan.layout.json")
//	l, err = graph.ReadLayoutFile("plan.layout.json")
//
// Boxes are listed in pre-order, so the root is always first and every parent
// precedes its children.
//
// # Concurrency
//
// A Layout is a plain value. Share it freely between goroutines as long as
// nobody writes to it.
package graph
