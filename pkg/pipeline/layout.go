package pipeline

import (
	"github.com/matzehuels/mindtree/pkg/cache"
	"github.com/matzehuels/mindtree/pkg/document"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// =============================================================================
// Layout Generation
// =============================================================================

// prepare returns a private copy of m with the option overrides applied
// and every node carrying an ID. The caller's mindmap is never touched.
func prepare(m *mindmap.Mindmap, opts Options) *mindmap.Mindmap {
	work := m.Clone()
	opts.applyStyle(&work.Style)
	if !work.IsEmpty() {
		work.Root.AssignIDs()
	}
	return work
}

// docHash identifies a prepared mindmap by its document encoding.
func docHash(m *mindmap.Mindmap) (string, error) {
	return cache.HashJSON(document.FromMindmap(m))
}

// GenerateLayout lays out a prepared mindmap in place and snapshots it.
// opts must have passed ValidateForLayout.
func GenerateLayout(m *mindmap.Mindmap, opts Options) (graph.Layout, error) {
	canvas, err := layout.Run(m, layout.Options{Engine: opts.Engine, Margin: *opts.Margin})
	if err != nil {
		return graph.Layout{}, err
	}
	return graph.FromMindmap(m, canvas, opts.Engine, *opts.Margin)
}
