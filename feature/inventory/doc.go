// Package inventory implements the inventory feature: item CRUD, sorted
// listings, spreadsheet import and export.
//
// Imports go through the reconcile engine with an adapter keyed on the item
// name. Each row is decoded into a Candidate whose fields are Provided,
// Absent or Invalid, and MergeFields decides which of them overwrite an
// existing item. Rows are committed one at a time, so a failing row leaves
// the rows before it in place and the error carries the committed count.
package inventory
