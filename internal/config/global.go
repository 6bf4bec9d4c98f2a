package config

import (
	"os"
	"path/filepath"

	"umbreldev/internal/constants"
	"umbreldev/internal/errors"
	"umbreldev/internal/xdg"

	"github.com/pelletier/go-toml/v2"
)

// GlobalConfig represents the global umbrel-dev configuration.
// Everything here has a working default; the config file is optional.
type GlobalConfig struct {
	VM  VMConfig  `toml:"vm"`
	Log LogConfig `toml:"log"`
}

type VMConfig struct {
	Box    string `toml:"box"`    // Base box for the development VM
	CPUs   int    `toml:"cpus"`   // CPU count
	Memory int    `toml:"memory"` // Memory in MB
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// DefaultGlobalConfig returns the default global configuration
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		VM: VMConfig{
			Box:    constants.DefaultVMBox,
			CPUs:   constants.DefaultVMCPUs,
			Memory: constants.DefaultVMMemory,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetConfigDir returns the XDG config directory for umbrel-dev
func GetConfigDir() (string, error) {
	return xdg.ConfigDir()
}

// LoadGlobalConfig loads the global configuration from the XDG config
// directory, falling back to defaults when no file exists.
func LoadGlobalConfig() (*GlobalConfig, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return loadGlobalConfigFrom(filepath.Join(configDir, "config.toml"))
}

func loadGlobalConfigFrom(configPath string) (*GlobalConfig, error) {
	config := DefaultGlobalConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, errors.ConfigParseError(err)
	}

	// Partially specified [vm] sections keep the defaults for the rest
	if config.VM.Box == "" {
		config.VM.Box = constants.DefaultVMBox
	}
	if config.VM.CPUs <= 0 {
		config.VM.CPUs = constants.DefaultVMCPUs
	}
	if config.VM.Memory <= 0 {
		config.VM.Memory = constants.DefaultVMMemory
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	return config, nil
}

// SaveGlobalConfig writes the configuration to the XDG config directory
func SaveGlobalConfig(config *GlobalConfig) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, constants.DirPermissions); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, data, constants.FilePermissions); err != nil {
		return errors.FileWriteError(configPath, err)
	}
	return nil
}
