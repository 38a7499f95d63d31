package layout

import (
	"slices"
	"sync"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/geom"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// DefaultEngine is the engine used when none is named.
const DefaultEngine = "leftright"

// DefaultMargin is the blank border kept around the drawing.
const DefaultMargin = 20.0

// Engine assigns relative positions to the nodes of a sized mindmap.
//
// Layout expects IntrinsicSize and SubtreeSize to be computed (see
// [ComputeSizes]) and sets the relative position of every node. It must be a
// no-op on an empty mindmap.
type Engine interface {
	Name() string
	Layout(m *mindmap.Mindmap)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Engine{}
)

func init() {
	Register(LeftRight{})
}

// Register makes an engine available by name. Registering a name twice
// replaces the earlier engine.
func Register(e Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[e.Name()] = e
}

// Get returns the engine registered under name. An empty name selects
// [DefaultEngine].
func Get(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidEngine, "unknown layout engine %q (available: %v)", name, namesLocked())
	}
	return e, nil
}

// Names lists the registered engines in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Options configures [Run].
type Options struct {
	// Engine names the layout engine. Empty means DefaultEngine.
	Engine string

	// Margin is the blank border around the drawing. Negative values are
	// treated as zero.
	Margin float64
}

// Run sizes, positions and finalizes every node of m. It returns the canvas
// rectangle in final coordinates, which starts at the origin.
func Run(m *mindmap.Mindmap, opts Options) (geom.Rect, error) {
	engine, err := Get(opts.Engine)
	if err != nil {
		return geom.Rect{}, err
	}
	ComputeSizes(m)
	engine.Layout(m)
	return Finalize(m, opts.Margin)
}
