package search

import "errors"

var (
	// ErrNilIndex is returned when an engine is constructed without an index.
	ErrNilIndex = errors.New("search: nil index")

	// ErrInvalidWeights is returned by Weights.Validate.
	ErrInvalidWeights = errors.New("search: invalid scoring weights")
)
