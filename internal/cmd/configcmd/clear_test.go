package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/urdu-convert/internal/config"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}

func TestRunClear_WithExistingConfig(t *testing.T) {
	dir := clearEnv(t)
	configPath := filepath.Join(dir, "ucv", "config.yml")
	require.NoError(t, (&config.Config{Whitelist: []string{"emph"}}).Save(configPath))

	var buf bytes.Buffer
	require.NoError(t, runClear(configPath, true, &buf))
	assert.Contains(t, buf.String(), "Configuration cleared from "+configPath)

	// Verify file is deleted
	_, err := os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_NoConfigFile(t *testing.T) {
	dir := clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, runClear(filepath.Join(dir, "none.yml"), true, &buf))
	assert.Contains(t, buf.String(), "No config file to remove")
}

func TestRunClear_Idempotent(t *testing.T) {
	dir := clearEnv(t)
	path := filepath.Join(dir, "config.yml")

	// Running twice should succeed
	require.NoError(t, runClear(path, true, &bytes.Buffer{}))
	require.NoError(t, runClear(path, true, &bytes.Buffer{}))
}

func TestRunClear_ReportsEnvVars(t *testing.T) {
	dir := clearEnv(t)
	t.Setenv("UCV_OUTPUT", "json")

	var buf bytes.Buffer
	require.NoError(t, runClear(filepath.Join(dir, "config.yml"), true, &buf))
	assert.Contains(t, buf.String(), "Environment variables will still be used: UCV_OUTPUT")
}
