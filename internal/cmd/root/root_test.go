package root

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/urdu-convert/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}

	cmd := NewCmdRoot()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewCmdRoot()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"convert", "table", "config", "init", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ucv version dev"))
}

func TestRoot_ConvertStdin(t *testing.T) {
	out, err := execute(t, "slam dnia\n", "convert", "--e2u", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "سلام دنیا\n", out)
}

func TestRoot_ConvertLatexJSON(t *testing.T) {
	out, err := execute(t, "\\begin{document}\n\\emph{ab} \\ref{ab}\n", "convert", "-l", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"\\emph{اب} \\ref{ab}"`)
}

func TestRoot_ConvertNoMode(t *testing.T) {
	_, err := execute(t, "ab\n", "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conversion mode")
}

func TestRoot_TableLookup(t *testing.T) {
	out, err := execute(t, "", "table", "-o", "plain", "k")
	require.NoError(t, err)
	assert.Equal(t, "k\tک\tU+06A9\tARABIC LETTER KEHEH\n", out)
}
