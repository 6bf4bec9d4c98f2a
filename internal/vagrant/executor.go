package vagrant

import (
	"context"
	"os"
	"os/exec"
)

// Executor runs vagrant commands (allows mocking)
type Executor interface {
	// Run executes vagrant with args and returns its combined output
	Run(ctx context.Context, args ...string) ([]byte, error)

	// RunAttached executes vagrant with args wired to the current process's
	// stdin/stdout/stderr. Used for streaming and interactive sessions.
	RunAttached(ctx context.Context, args ...string) error
}

// CommandExecutor executes the real vagrant binary in a fixed directory
type CommandExecutor struct {
	// Dir is the working directory for every invocation, normally the
	// environment root where the Vagrantfile lives
	Dir string
}

func (e *CommandExecutor) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "vagrant", args...)
	cmd.Dir = e.Dir
	return cmd.CombinedOutput()
}

func (e *CommandExecutor) RunAttached(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "vagrant", args...)
	cmd.Dir = e.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
