package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog source yields no operations.
	ErrEmptyCatalog = errors.New("catalog has no operations")

	// ErrMissingField is returned when an operation lacks id, label or category.
	ErrMissingField = errors.New("operation is missing a required field")

	// ErrDuplicateID is returned when two operations share an id.
	ErrDuplicateID = errors.New("duplicate operation id")

	// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
)
