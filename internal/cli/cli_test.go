package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"umbreldev/internal/config"
	"umbreldev/internal/environment"
	"umbreldev/internal/errors"
	"umbreldev/internal/operations"
	"umbreldev/internal/vagrant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGit struct{}

func (fakeGit) CloneRepository(ctx context.Context, repoURL, path string) error { return nil }
func (fakeGit) IsRepository(path string) bool                                   { return false }
func (fakeGit) CurrentBranch(path string) (string, error) {
	return "", fmt.Errorf("not a repository")
}
func (fakeGit) HasUncommittedChanges(path string) (bool, error) { return false, nil }

// newTestCLI builds a CLI whose VM commands hit the mock executor
func newTestCLI(t *testing.T) (*Manager, *vagrant.MockExecutor, *bytes.Buffer) {
	t.Helper()
	mock := vagrant.NewMockExecutor()
	m := New(config.DefaultGlobalConfig())
	m.SetManagers(fakeGit{}, func(root string) operations.VMClient {
		return vagrant.NewWithExecutor(mock)
	})
	var out bytes.Buffer
	m.SetOutput(&out)
	return m, mock, &out
}

// chdir mirrors t.Chdir (Go 1.24+), unavailable on older toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func initializedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, environment.CreateMarker(dir))
	return dir
}

func TestCommandsRefuseUninitializedDirectory(t *testing.T) {
	cases := [][]string{
		{"boot"},
		{"shutdown"},
		{"destroy"},
		{"containers"},
		{"rebuild", "manager"},
		{"reload"},
		{"app", "ls"},
		{"logs"},
		{"run", "true"},
		{"ssh"},
		{"status"},
	}

	for _, args := range cases {
		t.Run(args[0], func(t *testing.T) {
			chdir(t, t.TempDir())
			m, mock, _ := newTestCLI(t)

			err := m.ExecuteWithContext(context.Background(), args)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrEnvNotInitialized), "got: %v", err)
			assert.Equal(t, 1, errors.ExitCode(err))
			assert.Zero(t, mock.CallCount(), "no external process may run without an environment")
		})
	}
}

func TestRebuildRequiresContainerArgument(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, _ := newTestCLI(t)

	err := m.ExecuteWithContext(context.Background(), []string{"rebuild"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrArgMissing))
	assert.Zero(t, mock.CallCount())
}

func TestRunRequiresCommandArgument(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, _ := newTestCLI(t)

	err := m.ExecuteWithContext(context.Background(), []string{"run"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrArgMissing))
	assert.Zero(t, mock.CallCount())
}

func TestHelpAndUnknownCommandMatch(t *testing.T) {
	chdir(t, t.TempDir())

	m1, _, out1 := newTestCLI(t)
	err := m1.ExecuteWithContext(context.Background(), []string{"help"})
	require.Error(t, err)
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.True(t, errors.IsSilent(err))

	m2, _, out2 := newTestCLI(t)
	err = m2.ExecuteWithContext(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Equal(t, 1, errors.ExitCode(err))

	assert.NotEmpty(t, out1.String())
	assert.Equal(t, out1.String(), out2.String(), "help and unknown command must print the same reference")
	assert.Contains(t, out1.String(), "umbrel-dev")
	for _, name := range []string{"init", "boot", "shutdown", "destroy", "containers", "rebuild", "reload", "app", "logs", "run", "ssh"} {
		assert.Contains(t, out1.String(), name)
	}
}

func TestNoArgumentsPrintsHelpAndFails(t *testing.T) {
	m, _, out := newTestCLI(t)

	err := m.ExecuteWithContext(context.Background(), []string{})
	require.Error(t, err)
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.NotEmpty(t, out.String())
}

func TestBootDispatch(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, _ := newTestCLI(t)
	mock.SetOutput("status --machine-readable", "1700000000,default,state,poweroff\n")

	require.NoError(t, m.ExecuteWithContext(context.Background(), []string{"boot"}))
	assert.True(t, mock.HasCall("up", "--no-provision"))
	assert.True(t, mock.HasCall("up", "--provision"))
}

func TestShutdownDispatch(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, _ := newTestCLI(t)

	require.NoError(t, m.ExecuteWithContext(context.Background(), []string{"shutdown"}))
	assert.True(t, mock.HasCall("halt"))
}

func TestContainersDispatch(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, _ := newTestCLI(t)

	require.NoError(t, m.ExecuteWithContext(context.Background(), []string{"containers"}))
	assert.True(t, mock.HasCallPrefix("ssh", "-c"))
}

func TestCommandsResolveRootFromSubdirectory(t *testing.T) {
	dir := initializedDir(t)
	nested := filepath.Join(dir, "getumbrel", "umbrel")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	m, mock, _ := newTestCLI(t)
	require.NoError(t, m.ExecuteWithContext(context.Background(), []string{"shutdown"}))
	assert.True(t, mock.HasCall("halt"))
}

func TestStatusDispatch(t *testing.T) {
	chdir(t, initializedDir(t))
	m, mock, out := newTestCLI(t)
	mock.SetOutput("status --machine-readable", "1700000000,default,state,running\n")

	require.NoError(t, m.ExecuteWithContext(context.Background(), []string{"status"}))
	assert.Contains(t, out.String(), "VM state:    running")
	assert.Contains(t, out.String(), "getumbrel/umbrel")
	assert.Contains(t, out.String(), "(missing)")
}
