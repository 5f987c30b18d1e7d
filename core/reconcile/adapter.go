package reconcile

import (
	"context"

	"inventory-tracker/core/sheet"
)

// Adapter defines the model-specific side of a reconciliation.
// C is the decoded row (candidate) type, R the stored record type.
type Adapter[C, R any] interface {
	// Name returns the unique name of this adapter (e.g., "inventory").
	Name() string

	// Decode turns a sheet row into a candidate. ok is false when the row has
	// no natural key; such rows are skipped.
	Decode(row sheet.Row) (candidate C, ok bool)

	// Key returns the natural key of a candidate.
	Key(candidate C) string

	// Find returns the existing record for key, or nil when there is none.
	Find(ctx context.Context, key string) (*R, error)

	// Create persists a new record built from the candidate.
	Create(ctx context.Context, candidate C) error

	// Merge applies the candidate to an existing record.
	Merge(ctx context.Context, existing *R, candidate C) error
}

// RowSource is a finite stream of sheet rows; sheet.Iterator satisfies it.
type RowSource interface {
	Next() bool
	Row() sheet.Row
	Err() error
}
