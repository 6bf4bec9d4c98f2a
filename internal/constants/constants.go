// Package constants defines application-wide constants to avoid magic numbers
package constants

import "time"

// Environment Layout
const (
	// MarkerFileName is the sentinel file whose presence marks an initialized
	// development environment root
	MarkerFileName = ".umbrel-dev"

	// LockFileName is the advisory lock file taken by commands that mutate VM state
	LockFileName = ".umbrel-dev.lock"

	// VagrantfileName is the VM configuration file generated into the environment root
	VagrantfileName = "Vagrantfile"

	// ComposeOverrideFileName is the compose override copied into the main repository
	ComposeOverrideFileName = "docker-compose.override.yml"
)

// In-VM Paths
const (
	// VMSharedDir is where the environment root is mounted inside the VM
	VMSharedDir = "/vagrant"

	// VMProjectDir is the application directory inside the VM
	VMProjectDir = "/vagrant/getumbrel/umbrel"
)

// VM Configuration Defaults
const (
	// DefaultVMBox is the base box used for the development VM
	DefaultVMBox = "ubuntu/focal64"

	// DefaultVMCPUs is the default CPU count for the development VM
	DefaultVMCPUs = 2

	// DefaultVMMemory is the default memory (MB) for the development VM
	DefaultVMMemory = 4096

	// VMHostname is the hostname assigned to the development VM
	VMHostname = "umbrel-dev"

	// DeviceHostsURL is the hostname URL pinned on rebuilt app containers
	DeviceHostsURL = "http://umbrel-dev.local"
)

// Hypervisor Plugin
const (
	// GuestPluginName is the vagrant plugin required for shared folder support
	GuestPluginName = "vagrant-vbguest"

	// GuestPluginVersion pins the plugin to a version known to provision cleanly
	GuestPluginVersion = "0.30.0"
)

// File System Permissions
const (
	// DirPermissions is the standard directory permissions for generated directories
	DirPermissions = 0755

	// FilePermissions is the standard file permissions for generated files
	FilePermissions = 0644
)

// Timing and Delays
const (
	// LogsRetryDelay is the pause between log stream reconnection attempts
	LogsRetryDelay = 1 * time.Second
)

// Logging and Output Limits
const (
	// DefaultLogTailLines is the number of log lines replayed when streaming starts
	DefaultLogTailLines = 100
)
