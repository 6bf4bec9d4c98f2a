// Package vagrant wraps the vagrant CLI for controlling the development VM.
// All in-VM execution goes through ExecRequest so user-supplied arguments are
// quoted at a single choke point.
package vagrant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"umbreldev/internal/errors"
	"umbreldev/internal/logger"
)

// VM states as reported by `vagrant status --machine-readable`
const (
	StateRunning    = "running"
	StatePoweroff   = "poweroff"
	StateNotCreated = "not_created"
	StateSaved      = "saved"
)

// ExecRequest describes a command to run non-interactively inside the VM.
// Exactly one of Argv or Script must be set: Argv elements are individually
// shell-quoted, Script is passed to the in-VM shell verbatim.
type ExecRequest struct {
	Dir    string            // in-VM working directory, empty for the SSH default
	Env    map[string]string // environment variables set for the command
	Argv   []string          // command and arguments, quoted per element
	Script string            // raw shell text, run verbatim
}

// remoteCommand renders the request as a single shell command line
func (r ExecRequest) remoteCommand() string {
	var b strings.Builder
	if r.Dir != "" {
		b.WriteString("cd ")
		b.WriteString(Quote(r.Dir))
		b.WriteString(" && ")
	}

	keys := make([]string, 0, len(r.Env))
	for k := range r.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(Quote(r.Env[k]))
		b.WriteString(" ")
	}

	if r.Script != "" {
		b.WriteString(r.Script)
		return b.String()
	}

	quoted := make([]string, len(r.Argv))
	for i, arg := range r.Argv {
		quoted[i] = Quote(arg)
	}
	b.WriteString(strings.Join(quoted, " "))
	return b.String()
}

// Quote returns s single-quoted for POSIX shells
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'`$\\!*?#&|;<>(){}[]~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Client controls the development VM through the vagrant CLI
type Client struct {
	executor Executor
}

// New creates a vagrant client that runs in the given environment root
func New(dir string) *Client {
	return &Client{executor: &CommandExecutor{Dir: dir}}
}

// NewWithExecutor creates a vagrant client with a custom executor (for testing)
func NewWithExecutor(executor Executor) *Client {
	return &Client{executor: executor}
}

// Up starts the VM. With provision false the provisioners are skipped.
func (c *Client) Up(ctx context.Context, provision bool) error {
	flag := "--no-provision"
	if provision {
		flag = "--provision"
	}
	if err := c.executor.RunAttached(ctx, "up", flag); err != nil {
		return errors.VMCommandFailed(fmt.Sprintf("vagrant up %s", flag), err)
	}
	return nil
}

// Halt shuts the VM down
func (c *Client) Halt(ctx context.Context) error {
	if err := c.executor.RunAttached(ctx, "halt"); err != nil {
		return errors.VMCommandFailed("vagrant halt", err)
	}
	return nil
}

// Destroy deallocates the VM and its disk state
func (c *Client) Destroy(ctx context.Context) error {
	if err := c.executor.RunAttached(ctx, "destroy", "--force"); err != nil {
		return errors.VMCommandFailed("vagrant destroy", err)
	}
	return nil
}

// State reports the VM state from `vagrant status --machine-readable`
func (c *Client) State(ctx context.Context) (string, error) {
	output, err := c.executor.Run(ctx, "status", "--machine-readable")
	if err != nil {
		return "", errors.VMCommandFailed("vagrant status", err)
	}

	// Machine-readable output is timestamp,target,type,data per line
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.SplitN(strings.TrimSpace(line), ",", 4)
		if len(fields) == 4 && fields[2] == "state" {
			return fields[3], nil
		}
	}
	return "", errors.New(errors.ErrVMCommandFailed, "no state in vagrant status output")
}

// PluginInstall installs a vagrant plugin pinned to a version. Installing an
// already-present plugin at the same version is a no-op for vagrant.
func (c *Client) PluginInstall(ctx context.Context, name, version string) error {
	logger.WithFields(logger.Fields{"plugin": name, "version": version}).Info("Installing vagrant plugin")
	output, err := c.executor.Run(ctx, "plugin", "install", name, "--plugin-version", version)
	if err != nil {
		return errors.VMCommandFailed(fmt.Sprintf("vagrant plugin install %s: %s", name, strings.TrimSpace(string(output))), err)
	}
	return nil
}

// Exec runs a command inside the VM over the SSH control channel, streaming
// its output to the terminal
func (c *Client) Exec(ctx context.Context, req ExecRequest) error {
	remote := req.remoteCommand()
	logger.WithField("command", remote).Debug("Executing in VM")
	return c.executor.RunAttached(ctx, "ssh", "-c", remote)
}

// Shell opens an interactive login shell inside the VM in the given directory
func (c *Client) Shell(ctx context.Context, dir string) error {
	return c.executor.RunAttached(ctx, "ssh", "-c", fmt.Sprintf("cd %s && exec bash --login", Quote(dir)))
}
