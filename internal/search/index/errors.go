package index

import "errors"

// ErrNilCatalog is returned when an index is built without a catalog.
var ErrNilCatalog = errors.New("index: nil catalog")
