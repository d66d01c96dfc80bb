package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPath(t *testing.T) {
	dir := clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, runPath("", &buf))
	assert.Equal(t, filepath.Join(dir, "ucv", "config.yml")+"\n", buf.String())

	buf.Reset()
	require.NoError(t, runPath("/tmp/other.yml", &buf))
	assert.Equal(t, "/tmp/other.yml\n", buf.String())
}

func TestNewCmdConfig_Subcommands(t *testing.T) {
	cmd := NewCmdConfig()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "check", "path", "clear"}, names)
}
