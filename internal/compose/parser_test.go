package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComposeFile(t *testing.T) {
	content := `
version: "3.7"
services:
  manager:
    build: {context: "."}
    working_dir: /app
    command: npm run dev
    environment:
      - NODE_ENV=development
      - PORT=3006
    volumes:
      - /vagrant/getumbrel/umbrel-manager:/app
  dashboard:
    image: umbrel/dashboard:dev
    environment:
      STAGING: "true"
    depends_on:
      - manager
`
	path := filepath.Join(t.TempDir(), "docker-compose.override.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	compose, err := ParseComposeFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"dashboard", "manager"}, compose.GetServiceNames())
	assert.True(t, compose.HasService("manager"))
	assert.False(t, compose.HasService("middleware"))

	manager := compose.Services["manager"]
	assert.Equal(t, "manager", manager.Name)
	assert.Equal(t, []string{"npm run dev"}, []string(manager.Command))
	assert.Equal(t, "development", manager.Environment["NODE_ENV"])
	assert.Equal(t, "3006", manager.Environment["PORT"])

	dashboard := compose.Services["dashboard"]
	assert.Equal(t, "true", dashboard.Environment["STAGING"])
	assert.Equal(t, []string{"manager"}, []string(dashboard.DependsOn))
}

func TestParseComposeFile_Missing(t *testing.T) {
	_, err := ParseComposeFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("services: [not, a, map"))
	assert.Error(t, err)
}
