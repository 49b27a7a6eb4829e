package config

import "errors"

var (
	// ErrLocked is returned when another process holds the config write lock.
	ErrLocked = errors.New("another opsearch process is writing the config")

	// ErrInvalidConfig is returned for values that cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
)
