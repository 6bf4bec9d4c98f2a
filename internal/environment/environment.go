// Package environment manages the on-disk development environment: the
// marker file that identifies an initialized root, the fixed repository set,
// and first-time provisioning of a working directory.
package environment

import (
	"os"
	"path/filepath"

	"umbreldev/internal/constants"
	"umbreldev/internal/errors"
)

// Repository identifies one of the repositories cloned during init
type Repository struct {
	Owner string
	Name  string
}

// ID returns the owner/name identifier used as the clone directory
func (r Repository) ID() string {
	return r.Owner + "/" + r.Name
}

// URL returns the clone URL
func (r Repository) URL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name + ".git"
}

// CloneDir returns the clone directory relative to the environment root
func (r Repository) CloneDir() string {
	return filepath.Join(r.Owner, r.Name)
}

// Repositories is the fixed, ordered set of repositories an environment is
// built from. Not configurable at runtime.
var Repositories = []Repository{
	{Owner: "getumbrel", Name: "umbrel"},
	{Owner: "getumbrel", Name: "umbrel-dashboard"},
	{Owner: "getumbrel", Name: "umbrel-manager"},
	{Owner: "getumbrel", Name: "umbrel-middleware"},
}

// MainRepository is the repository that receives the compose override and
// hosts the application scripts inside the VM
var MainRepository = Repositories[0]

// FindRoot walks upward from startDir looking for the environment marker
// file. It returns the first directory containing it, or a typed
// not-initialized error when the filesystem root is reached without a match.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, constants.MarkerFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.EnvNotInitialized(startDir)
		}
		dir = parent
	}
}

// CreateMarker writes the zero-byte marker file into root
func CreateMarker(root string) error {
	path := filepath.Join(root, constants.MarkerFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.FileWriteError(path, err)
	}
	return f.Close()
}

// IsEmptyDir reports whether dir contains no entries, hidden files included
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
