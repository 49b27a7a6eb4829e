package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockPollInterval = 200 * time.Millisecond

// LockPath returns the lock file guarding writes under the home directory.
func LockPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".opsearch.lock"), nil
}

// acquireLock takes the write lock, polling until timeout. The returned
// func releases it.
func acquireLock(timeout time.Duration) (func(), error) {
	lockPath, err := LockPath()
	if err != nil {
		return func() {}, err
	}
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("%w (lock: %s)", ErrLocked, lockPath)
		}
		time.Sleep(lockPollInterval)
	}
}
