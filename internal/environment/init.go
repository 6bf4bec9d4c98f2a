package environment

import (
	"context"
	"os"
	"path/filepath"

	"umbreldev/internal/compose"
	"umbreldev/internal/config"
	"umbreldev/internal/constants"
	"umbreldev/internal/errors"
	"umbreldev/internal/logger"
)

// GitClient clones repositories during init
type GitClient interface {
	CloneRepository(ctx context.Context, repoURL, path string) error
}

// PluginInstaller installs hypervisor plugins during init
type PluginInstaller interface {
	PluginInstall(ctx context.Context, name, version string) error
}

// Initializer provisions an empty directory as a development environment
type Initializer struct {
	config *config.GlobalConfig
	git    GitClient
}

// NewInitializer creates an environment initializer
func NewInitializer(cfg *config.GlobalConfig, git GitClient) *Initializer {
	return &Initializer{config: cfg, git: git}
}

// Init provisions dir. The directory must be empty; on any later failure the
// marker is not written and no cleanup is attempted, matching the documented
// no-partial-cleanup contract.
func (i *Initializer) Init(ctx context.Context, dir string, vm PluginInstaller) error {
	empty, err := IsEmptyDir(dir)
	if err != nil {
		return errors.Wrap(errors.ErrFileSystem, "failed to inspect directory", err)
	}
	if !empty {
		return errors.EnvNotEmpty(dir)
	}

	logger.Infof("Initializing umbrel-dev environment in %s", dir)

	// VM configuration first so the plugin install runs against a valid
	// Vagrant project directory
	vagrantfile, err := RenderVagrantfile(i.config.VM)
	if err != nil {
		return err
	}
	vagrantfilePath := filepath.Join(dir, constants.VagrantfileName)
	if err := os.WriteFile(vagrantfilePath, vagrantfile, constants.FilePermissions); err != nil {
		return errors.FileWriteError(vagrantfilePath, err)
	}

	if err := vm.PluginInstall(ctx, constants.GuestPluginName, constants.GuestPluginVersion); err != nil {
		return err
	}

	for _, repo := range Repositories {
		logger.Infof("Cloning %s", repo.ID())
		if err := i.git.CloneRepository(ctx, repo.URL(), filepath.Join(dir, repo.CloneDir())); err != nil {
			return errors.GitCloneFailed(repo.ID(), err)
		}
	}

	if err := i.writeComposeOverride(dir); err != nil {
		return err
	}

	if err := CreateMarker(dir); err != nil {
		return err
	}

	logger.Info("Environment initialized. Run 'umbrel-dev boot' to start the VM.")
	return nil
}

// writeComposeOverride copies the bundled override into the main repository
// and sanity-checks that it parses
func (i *Initializer) writeComposeOverride(dir string) error {
	data := ComposeOverride()

	parsed, err := compose.Parse(data)
	if err != nil {
		return errors.ComposeParseError(constants.ComposeOverrideFileName, err)
	}
	if len(parsed.Services) == 0 {
		return errors.NewWithDetails(errors.ErrComposeParse, "Compose override configures no services", constants.ComposeOverrideFileName)
	}

	path := filepath.Join(dir, MainRepository.CloneDir(), constants.ComposeOverrideFileName)
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.FileWriteError(path, err)
	}

	logger.WithField("services", parsed.GetServiceNames()).Debug("Compose override installed")
	return nil
}
