// Package git wraps the go-git operations umbrel-dev needs: cloning the
// fixed repository set during init and reading repository state for status.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Manager handles git operations
type Manager struct{}

// New creates a new git manager
func New() *Manager {
	return &Manager{}
}

// CloneRepository clones repoURL into path, cleaning up any partial clone on
// failure
func (m *Manager) CloneRepository(ctx context.Context, repoURL, path string) error {
	if repoURL == "" {
		return fmt.Errorf("repository URL cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		return fmt.Errorf("path already exists: %s", absPath)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	_, err = gogit.PlainCloneContext(ctx, absPath, false, &gogit.CloneOptions{
		URL:      repoURL,
		Progress: os.Stdout,
	})
	if err != nil {
		// Clean up partial clone on failure
		os.RemoveAll(absPath)

		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "repository not found") {
			return fmt.Errorf("repository not found: %s", repoURL)
		} else if ctx.Err() != nil {
			return fmt.Errorf("clone cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("failed to clone repository from %s: %w", repoURL, err)
	}

	return nil
}

// IsRepository checks if the path is a valid git repository
func (m *Manager) IsRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// CurrentBranch returns the checked-out branch name for the repository at path
func (m *Manager) CurrentBranch(path string) (string, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("repository is in detached HEAD state")
	}

	return head.Name().Short(), nil
}

// HasUncommittedChanges checks if the repository has uncommitted changes
func (m *Manager) HasUncommittedChanges(path string) (bool, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}

	return !status.IsClean(), nil
}
