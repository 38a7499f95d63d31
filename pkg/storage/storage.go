// Package storage persists computed layouts so they can be fetched again by
// ID, for example by the HTTP API.
//
// Backends:
//   - [MemoryStore]: process-local, for tests and single-instance servers
//   - [FileStore]: one JSON file per record, for the CLI
//   - [MongoStore]: MongoDB collection for shared deployments
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Record is a stored layout.
type Record struct {
	ID        string       `json:"id" bson:"_id"`
	Title     string       `json:"title,omitempty" bson:"title,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	NodeCount int          `json:"node_count" bson:"node_count"`
	Layout    graph.Layout `json:"layout" bson:"layout"`
}

// Summary is a Record without its layout, as returned by List.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	NodeCount int       `json:"node_count" bson:"node_count"`
}

// NewRecord wraps a layout in a record with a fresh ID.
func NewRecord(l graph.Layout) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Title:     l.Title,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		NodeCount: len(l.Boxes),
		Layout:    l,
	}
}

// Summary returns the record without its layout.
func (r *Record) Summary() Summary {
	return Summary{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt, NodeCount: r.NodeCount}
}

// Store is implemented by every storage backend.
type Store interface {
	// Save inserts or replaces a record.
	Save(ctx context.Context, rec *Record) error

	// Get returns the record with the given ID, or a LAYOUT_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit summaries, newest first.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Delete removes a record, or returns a LAYOUT_NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// ValidateID checks that id is a UUID as produced by NewRecord.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "invalid layout id %q", id)
	}
	return nil
}

func prepare(rec *Record) error {
	if rec == nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "nil record")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	} else if err := ValidateID(rec.ID); err != nil {
		return err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	rec.NodeCount = len(rec.Layout.Boxes)
	return nil
}

func notFound(id string) error {
	return apperrors.New(apperrors.ErrCodeLayoutNotFound, "layout %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
