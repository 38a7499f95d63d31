// Package pkg holds the mindtree libraries.
//
// # Overview
//
// Mindtree lays out mindmaps as left-right trees: the root sits in the
// middle, its children are split between a right and a left branch, and
// every subtree is stacked vertically beside its parent. The pkg directory
// is organized as:
//
//  1. [mindmap] - the tree model, node styles and size estimation
//  2. [layout] - subtree aggregation, splitting, placement and centering
//  3. [document] - JSON, YAML and TOML documents
//  4. [graph] - the serializable layout handed to renderers
//  5. [render] - SVG, PNG, PDF, DOT and JSON output
//  6. [pipeline] - parse → layout → render with caching
//  7. [cache], [storage], [server] - infrastructure for the HTTP API
//
// # Data Flow
//
//	document (json/yaml/toml)
//	         ↓
//	    [document] package (decode + resolve styles)
//	         ↓
//	    [mindmap] package (tree + intrinsic sizes)
//	         ↓
//	    [layout] package (positions)
//	         ↓
//	    [graph] package (boxes + edges)
//	         ↓
//	    [render] package (svg/png/pdf/dot/json)
//
// # Quick Start
//
//	m, err := pipeline.ParseFile("roadmap.yaml", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, m, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("roadmap.svg", result.Artifacts["svg"], 0o644)
package pkg
