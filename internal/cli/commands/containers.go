package commands

import (
	"umbreldev/internal/errors"
	"umbreldev/internal/operations"

	"github.com/spf13/cobra"
)

// ContainerCommands creates the containers, rebuild and logs commands
func ContainerCommands(newVM VMFactory) []*cobra.Command {
	containersCmd := &cobra.Command{
		Use:   "containers",
		Short: "List the configured application containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}
			return errors.PassthroughExit(operations.ListContainers(cmd.Context(), newVM(root)))
		},
	}

	rebuildCmd := &cobra.Command{
		Use:   "rebuild <container>",
		Short: "Rebuild and recreate an application container",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.ArgMissing("rebuild", "container")
			}
			root, lock, err := lockedEnv()
			if err != nil {
				return err
			}
			defer lock.Release()
			return errors.PassthroughExit(operations.Rebuild(cmd.Context(), newVM(root), args[0]))
		},
	}

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Stream application container logs",
		Long: `Stream application container logs.

The stream reconnects indefinitely when it drops, including across VM
restarts. Interrupt the process to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}
			streamer := &operations.LogStreamer{VM: newVM(root)}
			err = streamer.Stream(cmd.Context())
			// Cancellation is the loop's only exit; report it quietly
			return errors.SilentExit(errors.ExitCode(err))
		},
	}

	return []*cobra.Command{containersCmd, rebuildCmd, logsCmd}
}
