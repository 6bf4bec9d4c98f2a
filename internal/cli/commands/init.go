package commands

import (
	"os"

	"umbreldev/internal/config"
	"umbreldev/internal/environment"

	"github.com/spf13/cobra"
)

// InitCommand creates the init command that provisions the current directory
// as a development environment
func InitCommand(cfg *config.GlobalConfig, git GitManager, newVM VMFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an umbrel-dev environment in the current directory",
		Long: `Initialize an umbrel-dev environment in the current directory.

The directory must be empty. init generates the VM configuration, installs
the required hypervisor plugin, clones the application repositories and marks
the directory as an environment root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			initializer := environment.NewInitializer(cfg, git)
			return initializer.Init(cmd.Context(), cwd, newVM(cwd))
		},
	}
}
