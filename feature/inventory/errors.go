package inventory

import "errors"

var (
	// ErrNotFound is returned when no item has the requested id.
	ErrNotFound = errors.New("inventory item not found")

	// ErrStoreUnavailable wraps connectivity failures of the backing database.
	ErrStoreUnavailable = errors.New("inventory store unavailable")

	// ErrInvalidInput is returned when a create or edit request fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFileProvided is returned when an import carries no file.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrUnparsableWorkbook is returned when the uploaded file cannot be read as a sheet.
	ErrUnparsableWorkbook = errors.New("unparsable workbook")

	// ErrStorageDisabled is returned by operations that need object storage when none is configured.
	ErrStorageDisabled = errors.New("object storage is not configured")
)
