package reconcile

import (
	"context"
	"fmt"
)

// Run reconciles every row of rows through the adapter, in order.
//
// On failure the returned report still describes the rows handled before the
// failing one. A failing lookup or write is returned as a *RowError.
func Run[C, R any](ctx context.Context, rows RowSource, adapter Adapter[C, R], opts Options) (*Report, error) {
	report := &Report{
		Adapter: adapter.Name(),
		DryRun:  opts.DryRun,
	}

	// In a dry run nothing is written, so keys "created" earlier in the same
	// sheet must still be reported as updates when they repeat.
	var planned map[string]struct{}
	if opts.DryRun {
		planned = make(map[string]struct{})
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		row := rows.Row()
		candidate, ok := adapter.Decode(row)
		if !ok {
			report.Skipped++
			report.record(Action{Type: ActionSkip, Row: row.Number}, opts)
			continue
		}

		key := adapter.Key(candidate)
		action := Action{Row: row.Number, Key: key}

		existing, err := adapter.Find(ctx, key)
		if err != nil {
			return report, &RowError{Row: row.Number, Key: key, Err: fmt.Errorf("lookup failed: %w", err)}
		}

		if existing == nil {
			if _, seen := planned[key]; seen {
				action.Type = ActionUpdate
			} else {
				action.Type = ActionCreate
			}
		} else {
			action.Type = ActionUpdate
		}

		if err := apply(ctx, adapter, existing, candidate, action, opts); err != nil {
			return report, &RowError{Row: row.Number, Key: key, Err: err}
		}

		switch action.Type {
		case ActionCreate:
			report.Created++
			if planned != nil {
				planned[key] = struct{}{}
			}
		case ActionUpdate:
			report.Updated++
		}
		report.Processed++
		report.record(action, opts)
	}

	if err := rows.Err(); err != nil {
		return report, err
	}

	return report, nil
}

func apply[C, R any](ctx context.Context, adapter Adapter[C, R], existing *R, candidate C, action Action, opts Options) error {
	if opts.DryRun {
		return nil
	}
	if action.Type == ActionCreate {
		if err := adapter.Create(ctx, candidate); err != nil {
			return fmt.Errorf("create failed: %w", err)
		}
		return nil
	}
	if err := adapter.Merge(ctx, existing, candidate); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	return nil
}

func (r *Report) record(action Action, opts Options) {
	if opts.Plan {
		r.Actions = append(r.Actions, action)
	}
	if opts.OnAction != nil {
		opts.OnAction(action)
	}
}
