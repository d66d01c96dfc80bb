// Package root provides the root command for the ucv CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/cmd/completion"
	"github.com/open-cli-collective/urdu-convert/internal/cmd/configcmd"
	"github.com/open-cli-collective/urdu-convert/internal/cmd/convert"
	initcmd "github.com/open-cli-collective/urdu-convert/internal/cmd/init"
	"github.com/open-cli-collective/urdu-convert/internal/cmd/table"
	"github.com/open-cli-collective/urdu-convert/internal/version"
)

// NewCmdRoot creates the root command for ucv.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ucv",
		Short: "Convert between English keyboard text and Urdu",
		Long: `ucv converts text typed on an English keyboard into Urdu using the
CRULP Urdu phonetic keyboard layout, and back.

In LaTeX mode only prose is converted: commands and their arguments are kept,
except for whitelisted commands such as \section whose arguments are prose.

Get started by running: ucv convert --latex paper.tex`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/ucv/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: plain, json, table")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("ucv version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(table.NewCmdTable())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
