package operations

import (
	"context"
	"testing"

	"umbreldev/internal/vagrant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContainers(t *testing.T) {
	mock, vm := newMockVM(vagrant.StateRunning)

	require.NoError(t, ListContainers(context.Background(), vm))
	assert.Equal(t, []string{
		"ssh -c cd /vagrant/getumbrel/umbrel && docker-compose config --services",
	}, callKeys(mock))
}

func TestRebuild_FullSequence(t *testing.T) {
	mock, vm := newMockVM(vagrant.StateRunning)

	require.NoError(t, Rebuild(context.Background(), vm, "manager"))

	assert.Equal(t, []string{
		"ssh -c cd /vagrant/getumbrel/umbrel && docker-compose build manager",
		"ssh -c cd /vagrant/getumbrel/umbrel && docker-compose stop manager",
		"ssh -c cd /vagrant/getumbrel/umbrel && docker-compose rm -f manager",
		"ssh -c cd /vagrant/getumbrel/umbrel && DEVICE_HOSTS=http://umbrel-dev.local docker-compose up -d manager",
	}, callKeys(mock))
}

func TestRebuild_AbortsAtFirstFailure(t *testing.T) {
	mock, vm := newMockVM(vagrant.StateRunning)
	mock.SetError("ssh -c cd /vagrant/getumbrel/umbrel && docker-compose stop manager", "stop failed")

	assert.Error(t, Rebuild(context.Background(), vm, "manager"))
	assert.Len(t, mock.Calls, 2)
}
