package reconcile

import "fmt"

// ActionType represents the decision taken for a row.
type ActionType string

const (
	// ActionCreate creates a new record.
	ActionCreate ActionType = "create"
	// ActionUpdate merges the row into an existing record.
	ActionUpdate ActionType = "update"
	// ActionSkip ignores a row without a natural key.
	ActionSkip ActionType = "skip"
)

// Action is the decision taken for one row.
type Action struct {
	// Type is the decision.
	Type ActionType `json:"type"`

	// Row is the 1-based sheet row number.
	Row int `json:"row"`

	// Key is the natural key of the row; empty for skipped rows.
	Key string `json:"key,omitempty"`
}

// Options controls a reconciliation run.
type Options struct {
	// DryRun decides every row without writing to the store.
	DryRun bool

	// Plan records every Action in the report.
	Plan bool

	// OnAction, when set, is called after each row decision has been applied.
	OnAction func(Action)
}

// Report summarises a run.
type Report struct {
	// Adapter is the name of the adapter used.
	Adapter string `json:"adapter"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run"`

	// Processed counts rows that had a natural key and were created or updated.
	Processed int `json:"processed"`

	// Created counts create decisions.
	Created int `json:"created"`

	// Updated counts update decisions.
	Updated int `json:"updated"`

	// Skipped counts rows without a natural key.
	Skipped int `json:"skipped"`

	// Actions holds the per-row decisions when Options.Plan is set.
	Actions []Action `json:"actions,omitempty"`
}

// RowError reports the row that aborted a run.
type RowError struct {
	// Row is the 1-based sheet row number.
	Row int
	// Key is the natural key of the row.
	Key string
	// Err is the underlying failure.
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%q): %v", e.Row, e.Key, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
