package commands

import (
	"fmt"

	"umbreldev/internal/operations"

	"github.com/spf13/cobra"
)

// StatusCommand creates the status command showing the VM state and the
// branch of every cloned repository
func StatusCommand(newVM VMFactory, git GitManager) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show VM state and repository branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}

			status, err := operations.CollectStatus(cmd.Context(), newVM(root), git, root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Environment: %s\n", status.Root)
			fmt.Fprintf(out, "VM state:    %s\n", status.VMState)
			fmt.Fprintln(out)
			for _, repo := range status.Repos {
				switch {
				case !repo.Exists:
					fmt.Fprintf(out, "  %-32s (missing)\n", repo.ID)
				case repo.Dirty:
					fmt.Fprintf(out, "  %-32s %s *\n", repo.ID, repo.Branch)
				default:
					fmt.Fprintf(out, "  %-32s %s\n", repo.ID, repo.Branch)
				}
			}
			return nil
		},
	}
}
