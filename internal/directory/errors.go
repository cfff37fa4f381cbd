package directory

import "errors"

// Directory-related errors
var (
	// Validation errors
	ErrMissingField = errors.New("a schema field is missing from the input")
	ErrEmptyField   = errors.New("all fields must be filled in")
	ErrInvalidPhone = errors.New("phone numbers must contain digits only")

	// Lookup errors
	ErrRecordNotFound = errors.New("record not found")
)
