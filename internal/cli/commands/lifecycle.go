package commands

import (
	"umbreldev/internal/operations"

	"github.com/spf13/cobra"
)

// LifecycleCommands creates the boot, shutdown and destroy commands
func LifecycleCommands(newVM VMFactory) []*cobra.Command {
	bootCmd := &cobra.Command{
		Use:   "boot",
		Short: "Boot the development VM",
		Long: `Boot the development VM.

The VM is first started without provisioning, gets kernel headers installed
so the guest tooling can build, and is then restarted with full provisioning.
A failure of the first start is expected and ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, lock, err := lockedEnv()
			if err != nil {
				return err
			}
			defer lock.Release()
			return operations.Boot(cmd.Context(), newVM(root))
		},
	}

	shutdownCmd := &cobra.Command{
		Use:   "shutdown",
		Short: "Shut the development VM down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, lock, err := lockedEnv()
			if err != nil {
				return err
			}
			defer lock.Release()
			return operations.Shutdown(cmd.Context(), newVM(root))
		},
	}

	destroyCmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the development VM and its disk state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, lock, err := lockedEnv()
			if err != nil {
				return err
			}
			defer lock.Release()
			return operations.Destroy(cmd.Context(), newVM(root))
		},
	}

	return []*cobra.Command{bootCmd, shutdownCmd, destroyCmd}
}
