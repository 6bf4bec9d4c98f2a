package operations

import (
	"context"
	"strings"

	"umbreldev/internal/constants"
	"umbreldev/internal/logger"
	"umbreldev/internal/vagrant"
)

// bootPackages are installed inside the VM before provisioning so the guest
// additions plugin finds matching kernel headers
var bootPackages = []string{
	"build-essential",
	"dkms",
	"linux-headers-generic",
}

// Boot brings the VM up. The first start skips provisioning and its failure
// is tolerated (the guest-tooling plugin is known to fail until kernel
// headers are present); the VM then gets headers installed, is halted, and is
// started again with full provisioning. Failures after the first start
// propagate.
func Boot(ctx context.Context, vm VMClient) error {
	logger.Info("Starting VM without provisioning")
	if err := vm.Up(ctx, false); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.WithError(err).Warn("Initial VM start failed, continuing")
	}

	state, err := vm.State(ctx)
	if err != nil {
		return err
	}

	if state == vagrant.StateRunning {
		logger.Info("Installing kernel headers in VM")
		err := vm.Exec(ctx, vagrant.ExecRequest{
			Script: "sudo apt-get update && sudo apt-get install -y " + strings.Join(bootPackages, " "),
		})
		if err != nil {
			return err
		}

		if err := vm.Halt(ctx); err != nil {
			return err
		}
	}

	logger.Info("Starting VM with provisioning")
	return vm.Up(ctx, true)
}

// Shutdown halts the VM
func Shutdown(ctx context.Context, vm VMClient) error {
	return vm.Halt(ctx)
}

// Destroy deallocates the VM and its disk state
func Destroy(ctx context.Context, vm VMClient) error {
	logger.Warn("Destroying the development VM. This is irreversible; a new VM requires a full 'umbrel-dev boot'.")
	return vm.Destroy(ctx)
}

// Reload restarts the application inside the VM by running its stop,
// configure and start scripts in strict sequence
func Reload(ctx context.Context, vm VMClient) error {
	for _, script := range []string{"./scripts/stop", "./scripts/configure", "./scripts/start"} {
		err := vm.Exec(ctx, vagrant.ExecRequest{
			Dir:  constants.VMProjectDir,
			Argv: []string{"sudo", script},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// App forwards args verbatim to the in-VM application management script
func App(ctx context.Context, vm VMClient, args []string) error {
	return vm.Exec(ctx, vagrant.ExecRequest{
		Dir:  constants.VMProjectDir,
		Argv: append([]string{"sudo", "./scripts/app"}, args...),
	})
}

// Run executes an arbitrary shell command in the VM's project directory
func Run(ctx context.Context, vm VMClient, command string) error {
	return vm.Exec(ctx, vagrant.ExecRequest{
		Dir:    constants.VMProjectDir,
		Script: command,
	})
}
