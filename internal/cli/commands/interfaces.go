package commands

import (
	"context"

	"umbreldev/internal/operations"
)

// VMClient is re-exported so command wiring stays in one vocabulary
type VMClient = operations.VMClient

// VMFactory builds a VM client bound to an environment root
type VMFactory func(root string) VMClient

// GitManager covers the git operations commands need
type GitManager interface {
	CloneRepository(ctx context.Context, repoURL, path string) error
	IsRepository(path string) bool
	CurrentBranch(path string) (string, error)
	HasUncommittedChanges(path string) (bool, error)
}
