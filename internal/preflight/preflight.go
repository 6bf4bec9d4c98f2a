// Package preflight verifies the host has the external tools umbrel-dev
// drives before any command runs.
package preflight

import (
	"os/exec"
	"runtime"

	"umbreldev/internal/errors"
)

// Dependency is a required host executable with installation guidance per
// platform (keyed by GOOS, "" as the fallback).
type Dependency struct {
	Binary   string
	Guidance map[string]string
}

// Required lists the executables every invocation depends on
var Required = []Dependency{
	{
		Binary: "git",
		Guidance: map[string]string{
			"darwin": "Install the Xcode command line tools with 'xcode-select --install' or run 'brew install git'",
			"linux":  "Install git with your package manager, e.g. 'sudo apt-get install git'",
			"":       "Install git from https://git-scm.com/downloads",
		},
	},
	{
		Binary: "vagrant",
		Guidance: map[string]string{
			"darwin": "Run 'brew install --cask vagrant'",
			"linux":  "Install vagrant from https://www.vagrantup.com/downloads, e.g. 'sudo apt-get install vagrant'",
			"":       "Install vagrant from https://www.vagrantup.com/downloads",
		},
	},
	{
		Binary: "VBoxManage",
		Guidance: map[string]string{
			"darwin": "Run 'brew install --cask virtualbox'",
			"linux":  "Install VirtualBox from https://www.virtualbox.org/wiki/Linux_Downloads, e.g. 'sudo apt-get install virtualbox'",
			"":       "Install VirtualBox from https://www.virtualbox.org/wiki/Downloads",
		},
	},
}

// Checker resolves required executables on the search path
type Checker struct {
	// LookPath resolves a binary name; defaults to exec.LookPath
	LookPath func(string) (string, error)

	// GOOS selects the guidance message; defaults to runtime.GOOS
	GOOS string
}

// NewChecker creates a checker using the real executable search path
func NewChecker() *Checker {
	return &Checker{LookPath: exec.LookPath, GOOS: runtime.GOOS}
}

// Check verifies every required dependency is resolvable. It fails on the
// first missing one with platform-specific installation guidance.
func (c *Checker) Check() error {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	goos := c.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	for _, dep := range Required {
		if _, err := lookPath(dep.Binary); err != nil {
			guidance, ok := dep.Guidance[goos]
			if !ok {
				guidance = dep.Guidance[""]
			}
			return errors.DependencyMissing(dep.Binary, guidance)
		}
	}
	return nil
}
