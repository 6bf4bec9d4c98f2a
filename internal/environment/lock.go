package environment

import (
	"path/filepath"

	"umbreldev/internal/constants"
	"umbreldev/internal/errors"

	"github.com/gofrs/flock"
)

// Lock is an advisory file lock on an environment root. Commands that change
// VM or repository state take it non-blocking so two invocations cannot
// interleave.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the environment lock, failing immediately when another
// invocation holds it
func AcquireLock(root string) (*Lock, error) {
	fl := flock.New(filepath.Join(root, constants.LockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.EnvLocked(root, err)
	}
	if !locked {
		return nil, errors.EnvLocked(root, nil)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
