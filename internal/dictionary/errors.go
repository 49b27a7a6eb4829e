package dictionary

import "errors"

// ErrUnsupportedFormat is returned for dictionary files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported dictionary file format")
