package cli

import (
	"context"
	"io"

	"umbreldev/internal/cli/commands"
	"umbreldev/internal/config"
	"umbreldev/internal/operations"
	"umbreldev/internal/vagrant"

	"github.com/spf13/cobra"
)

// Manager handles CLI operations
type Manager struct {
	config  *config.GlobalConfig
	git     commands.GitManager
	newVM   commands.VMFactory
	rootCmd *cobra.Command
}

// New creates a new CLI manager
func New(cfg *config.GlobalConfig) *Manager {
	m := &Manager{
		config: cfg,
		newVM: func(root string) operations.VMClient {
			return vagrant.New(root)
		},
	}

	// Use the root command from root.go
	m.rootCmd = createRootCommand()

	return m
}

// SetManagers sets the git manager and the VM client factory. A nil factory
// keeps the default vagrant-backed one.
func (m *Manager) SetManagers(git commands.GitManager, newVM commands.VMFactory) {
	m.git = git
	if newVM != nil {
		m.newVM = newVM
	}
	m.setupCommands()
}

// SetOutput redirects command output (for testing)
func (m *Manager) SetOutput(w io.Writer) {
	m.rootCmd.SetOut(w)
	m.rootCmd.SetErr(w)
}

// ExecuteWithContext executes the CLI with the given arguments and context
func (m *Manager) ExecuteWithContext(ctx context.Context, args []string) error {
	m.rootCmd.SetArgs(args)
	return m.rootCmd.ExecuteContext(ctx)
}

// setupCommands sets up all CLI commands
func (m *Manager) setupCommands() {
	m.rootCmd.AddCommand(commands.InitCommand(m.config, m.git, m.newVM))

	for _, cmd := range commands.LifecycleCommands(m.newVM) {
		m.rootCmd.AddCommand(cmd)
	}

	for _, cmd := range commands.ContainerCommands(m.newVM) {
		m.rootCmd.AddCommand(cmd)
	}

	for _, cmd := range commands.AppCommands(m.newVM) {
		m.rootCmd.AddCommand(cmd)
	}

	m.rootCmd.AddCommand(commands.StatusCommand(m.newVM, m.git))
}
