package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"umbreldev/internal/vagrant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitStatuser struct {
	branches map[string]string
	dirty    map[string]bool
}

func (f *fakeGitStatuser) IsRepository(path string) bool {
	_, ok := f.branches[filepath.Base(path)]
	return ok
}

func (f *fakeGitStatuser) CurrentBranch(path string) (string, error) {
	if branch, ok := f.branches[filepath.Base(path)]; ok {
		return branch, nil
	}
	return "", fmt.Errorf("not a repository: %s", path)
}

func (f *fakeGitStatuser) HasUncommittedChanges(path string) (bool, error) {
	return f.dirty[filepath.Base(path)], nil
}

func TestCollectStatus(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "getumbrel", "umbrel"), 0755))

	_, vm := newMockVM(vagrant.StateRunning)
	git := &fakeGitStatuser{
		branches: map[string]string{
			"umbrel":           "master",
			"umbrel-dashboard": "feature/login",
		},
		dirty: map[string]bool{"umbrel-dashboard": true},
	}

	status, err := CollectStatus(context.Background(), vm, git, root)
	require.NoError(t, err)

	assert.Equal(t, vagrant.StateRunning, status.VMState)
	require.Len(t, status.Repos, 4)

	assert.Equal(t, "getumbrel/umbrel", status.Repos[0].ID)
	assert.True(t, status.Repos[0].Exists)
	assert.Equal(t, "master", status.Repos[0].Branch)
	assert.False(t, status.Repos[0].Dirty)

	assert.Equal(t, "feature/login", status.Repos[1].Branch)
	assert.True(t, status.Repos[1].Dirty)

	// Repositories that were never cloned show up as missing
	assert.False(t, status.Repos[2].Exists)
	assert.Empty(t, status.Repos[2].Branch)
}

func TestCollectStatus_StateFailurePropagates(t *testing.T) {
	mock := vagrant.NewMockExecutor()
	mock.SetError("status --machine-readable", "no vagrant")
	vm := vagrant.NewWithExecutor(mock)

	_, err := CollectStatus(context.Background(), vm, &fakeGitStatuser{}, t.TempDir())
	assert.Error(t, err)
}
