package app

import (
	"context"
	"fmt"
	"os"
	"testing"

	"umbreldev/internal/errors"
	"umbreldev/internal/preflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir (Go 1.24+), unavailable on older toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func brokenPreflight() *preflight.Checker {
	return &preflight.Checker{
		GOOS: "linux",
		LookPath: func(name string) (string, error) {
			return "", fmt.Errorf("not found")
		},
	}
}

func TestRun_PreflightFailureComesFirst(t *testing.T) {
	// In an uninitialized directory a missing dependency must still win:
	// the preflight runs before any command logic
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := New()
	a.Preflight = brokenPreflight()

	for _, args := range [][]string{{"boot"}, {"containers"}, {"help"}} {
		err := a.RunWithContext(context.Background(), args)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrDependencyMissing), "args %v: got %v", args, err)
		assert.Equal(t, 1, errors.ExitCode(err))
	}
}

func TestRun_PreflightPassesThroughToCLI(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := New()
	a.Preflight = &preflight.Checker{
		LookPath: func(name string) (string, error) { return "/usr/bin/" + name, nil },
	}

	// Environment resolution is the next gate once dependencies resolve
	err := a.RunWithContext(context.Background(), []string{"shutdown"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrEnvNotInitialized))
}
