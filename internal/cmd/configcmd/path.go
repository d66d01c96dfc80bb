package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/config"
)

// NewCmdPath creates the config path command.
func NewCmdPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Example: `  # Edit the config file
  $EDITOR "$(ucv config path)"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runPath(configPath, cmd.OutOrStdout())
		},
	}
}

func runPath(configPath string, w io.Writer) error {
	_, err := fmt.Fprintln(w, config.ResolvePath(configPath))
	return err
}
