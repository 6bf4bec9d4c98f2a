package operations

import (
	"context"

	"umbreldev/internal/vagrant"
)

// VMClient is the control surface for the development VM
type VMClient interface {
	Up(ctx context.Context, provision bool) error
	Halt(ctx context.Context) error
	Destroy(ctx context.Context) error
	State(ctx context.Context) (string, error)
	PluginInstall(ctx context.Context, name, version string) error
	Exec(ctx context.Context, req vagrant.ExecRequest) error
	Shell(ctx context.Context, dir string) error
}

// GitStatuser reads repository state for the status view
type GitStatuser interface {
	IsRepository(path string) bool
	CurrentBranch(path string) (string, error)
	HasUncommittedChanges(path string) (bool, error)
}
