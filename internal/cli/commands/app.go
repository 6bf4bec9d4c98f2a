package commands

import (
	"strings"

	"umbreldev/internal/constants"
	"umbreldev/internal/errors"
	"umbreldev/internal/operations"

	"github.com/spf13/cobra"
)

// AppCommands creates the reload, app, run and ssh commands
func AppCommands(newVM VMFactory) []*cobra.Command {
	reloadCmd := &cobra.Command{
		Use:   "reload",
		Short: "Stop, reconfigure and restart the application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, lock, err := lockedEnv()
			if err != nil {
				return err
			}
			defer lock.Release()
			return errors.PassthroughExit(operations.Reload(cmd.Context(), newVM(root)))
		},
	}

	appCmd := &cobra.Command{
		Use:   "app [args...]",
		Short: "Forward arguments to the in-VM app management script",
		// Arguments belong to the in-VM script, not to this CLI
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}
			return errors.PassthroughExit(operations.App(cmd.Context(), newVM(root), args))
		},
	}

	runCmd := &cobra.Command{
		Use:                "run <command>",
		Short:              "Run a shell command in the VM's project directory",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.ArgMissing("run", "command")
			}
			root, err := resolveRoot()
			if err != nil {
				return err
			}
			return errors.PassthroughExit(operations.Run(cmd.Context(), newVM(root), strings.Join(args, " ")))
		},
	}

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Open an interactive shell in the VM's project directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}
			return errors.PassthroughExit(newVM(root).Shell(cmd.Context(), constants.VMProjectDir))
		},
	}

	return []*cobra.Command{reloadCmd, appCmd, runCmd, sshCmd}
}
