package commands

import (
	"os"

	"umbreldev/internal/environment"
)

// resolveRoot locates the environment root for the current working directory
func resolveRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return environment.FindRoot(cwd)
}

// lockedEnv resolves the environment root and takes its advisory lock.
// Used by commands that change VM state.
func lockedEnv() (string, *environment.Lock, error) {
	root, err := resolveRoot()
	if err != nil {
		return "", nil, err
	}
	lock, err := environment.AcquireLock(root)
	if err != nil {
		return "", nil, err
	}
	return root, lock, nil
}
