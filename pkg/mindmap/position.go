package mindmap

import (
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/geom"
)

// SetRelativePosition records the node center computed by a layout engine.
func (n *Node) SetRelativePosition(p geom.Point) {
	n.positionRelative = &p
}

// RelativePosition returns the layout position and whether one was set.
func (n *Node) RelativePosition() (geom.Point, bool) {
	if n.positionRelative == nil {
		return geom.Point{}, false
	}
	return *n.positionRelative, true
}

// SetFinalPosition stores the relative position translated by -offset.
// Calling it before a layout pass placed the node is a programming error and
// returns an ErrCodePositionUnset error without touching the node.
func (n *Node) SetFinalPosition(offset geom.Point) error {
	if n.positionRelative == nil {
		return apperrors.New(apperrors.ErrCodePositionUnset, "node %q has no relative position", n.ID)
	}
	p := n.positionRelative.Sub(offset)
	n.positionFinal = &p
	return nil
}

// FinalPosition returns the translated position and whether one was set.
func (n *Node) FinalPosition() (geom.Point, bool) {
	if n.positionFinal == nil {
		return geom.Point{}, false
	}
	return *n.positionFinal, true
}

// Bounds returns the node box around its relative position.
func (n *Node) Bounds() (geom.Rect, bool) {
	p, ok := n.RelativePosition()
	if !ok {
		return geom.Rect{}, false
	}
	return geom.RectAround(p, n.IntrinsicSize), true
}
