// Package utils provides scalar conversion helpers shared across the
// application. Spreadsheet cells and query parameters arrive as loosely typed
// values; these functions coerce them with a zero-value fallback instead of
// an error.
package utils
