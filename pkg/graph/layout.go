package graph

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and validates it.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "unmarshal layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks that the canvas has a sane size, box IDs are unique and
// every edge connects existing boxes.
func (l *Layout) Validate() error {
	for _, v := range []float64{l.Width, l.Height, l.Margin} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "layout dimensions must be finite and non-negative")
		}
	}
	if !l.IsEmpty() && (l.Width == 0 || l.Height == 0) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "layout with boxes must have a canvas")
	}

	ids := make(map[string]bool, len(l.Boxes))
	for _, b := range l.Boxes {
		if b.ID == "" {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "layout box without id")
		}
		if ids[b.ID] {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "duplicate box id %q", b.ID)
		}
		ids[b.ID] = true
	}
	for _, e := range l.Edges {
		if !ids[e.From] || !ids[e.To] {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "edge %s -> %s references an unknown box", e.From, e.To)
		}
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Layout{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return UnmarshalLayout(data)
}
