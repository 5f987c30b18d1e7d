// Package sheet reads and writes tabular spreadsheets.
//
// Workbooks (.xlsx) are handled with excelize; CSV files with encoding/csv.
// Both readers expose the same streaming Iterator: the first non-empty row is
// the header, every later non-empty row is yielded once, in file order.
//
// # Header Resolution
//
// A Header is built once per sheet. It keeps the original header text and an
// index of normalized names (lowercased, surrounding whitespace trimmed) so
// that callers resolve a list of accepted aliases with a single map lookup per
// alias:
//
//	col, ok := row.Header().Resolve("current quantity", "current qty", "quantity")
//	cell, present := row.Lookup(col)
//
// A blank cell is reported as not present.
package sheet
