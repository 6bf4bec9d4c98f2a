package operations

import (
	"context"
	"strconv"

	"umbreldev/internal/constants"
	"umbreldev/internal/logger"
	"umbreldev/internal/vagrant"
)

// ListContainers prints the configured compose service names from inside the
// VM, verbatim
func ListContainers(ctx context.Context, vm VMClient) error {
	return vm.Exec(ctx, vagrant.ExecRequest{
		Dir:  constants.VMProjectDir,
		Argv: []string{"docker-compose", "config", "--services"},
	})
}

// Rebuild rebuilds one compose service inside the VM: build the image, stop
// and remove the running instance, then recreate it detached with
// DEVICE_HOSTS pinned to the local hostname URL. The sequence is not atomic;
// the first failing step aborts the rest.
func Rebuild(ctx context.Context, vm VMClient, service string) error {
	logger.WithField("container", service).Info("Rebuilding container")

	steps := []vagrant.ExecRequest{
		{Dir: constants.VMProjectDir, Argv: []string{"docker-compose", "build", service}},
		{Dir: constants.VMProjectDir, Argv: []string{"docker-compose", "stop", service}},
		{Dir: constants.VMProjectDir, Argv: []string{"docker-compose", "rm", "-f", service}},
		{
			Dir:  constants.VMProjectDir,
			Env:  map[string]string{"DEVICE_HOSTS": constants.DeviceHostsURL},
			Argv: []string{"docker-compose", "up", "-d", service},
		},
	}

	for _, step := range steps {
		if err := vm.Exec(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func logsCommand() []string {
	return []string{"docker-compose", "logs", "-f", "--tail", strconv.Itoa(constants.DefaultLogTailLines)}
}
