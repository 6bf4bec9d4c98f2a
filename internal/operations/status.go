package operations

import (
	"context"
	"path/filepath"

	"umbreldev/internal/environment"
)

// RepoStatus is the host-side view of one cloned repository
type RepoStatus struct {
	ID     string
	Branch string
	Dirty  bool
	Exists bool
}

// EnvStatus is the host-side view of an environment
type EnvStatus struct {
	Root    string
	VMState string
	Repos   []RepoStatus
}

// CollectStatus gathers the VM state and per-repository branch and dirty
// flags without touching anything
func CollectStatus(ctx context.Context, vm VMClient, git GitStatuser, root string) (*EnvStatus, error) {
	state, err := vm.State(ctx)
	if err != nil {
		return nil, err
	}

	status := &EnvStatus{Root: root, VMState: state}
	for _, repo := range environment.Repositories {
		path := filepath.Join(root, repo.CloneDir())
		rs := RepoStatus{ID: repo.ID()}

		if git.IsRepository(path) {
			rs.Exists = true
			if branch, err := git.CurrentBranch(path); err == nil {
				rs.Branch = branch
			}
			if dirty, err := git.HasUncommittedChanges(path); err == nil {
				rs.Dirty = dirty
			}
		}
		status.Repos = append(status.Repos, rs)
	}

	return status, nil
}
