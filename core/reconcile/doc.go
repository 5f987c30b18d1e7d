// Package reconcile merges rows of an imported sheet into an existing store.
//
// The engine walks rows strictly in file order and makes one decision per row:
//
//  1. Decode: the adapter turns the row into a candidate. A row without a
//     natural key is skipped and never touches the store.
//  2. Lookup: the adapter finds the existing record for the candidate's key.
//  3. Apply: no match creates a record, a match merges the candidate into it.
//
// Each row performs its own lookup-then-write round trip; nothing is batched
// and no transaction spans the run. The first failing row aborts the run with
// a *RowError while rows applied before it stay applied; the Report returned
// next to the error counts exactly those rows.
//
// # Adapters
//
// Model specific logic (column mapping, coercion, merge precedence) lives in
// an Adapter implementation. See feature/inventory for the inventory adapter.
//
// # Usage
//
//	rows, err := sheet.Open(file, "stock.xlsx")
//	report, err := reconcile.Run(ctx, rows, adapter, reconcile.Options{DryRun: true, Plan: true})
package reconcile
