package cli

import (
	"umbreldev/internal/errors"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// createRootCommand creates the root command with global behavior
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "umbrel-dev",
		Short: "Manage an Umbrel development environment inside a local VM",
		Long: `umbrel-dev manages an Umbrel development environment inside a local
virtual machine. It clones the application repositories, generates the VM
configuration and forwards lifecycle commands to the hypervisor, so the whole
multi-container application runs against your working copies.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unrecognized commands reach RunE instead of erroring out
		Args: cobra.ArbitraryArgs,
		// Running without a valid command prints the reference and exits
		// nonzero: nothing was done
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.SilentExit(1)
		},
	}

	// `umbrel-dev help` keeps the same exit contract as a missing command
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show the command reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().Help(); err != nil {
				return err
			}
			return errors.SilentExit(1)
		},
	})

	return rootCmd
}
