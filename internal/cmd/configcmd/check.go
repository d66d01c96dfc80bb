package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/config"
	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

// sampleDocument exercises activation, a whitelisted command, a kept
// command and an English block.
var sampleDocument = []string{
	`\begin{document}`,
	`\section{slam} dnia \label{intro}`,
	`\begin{english}`,
	`hello`,
	`\end{english}`,
}

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration",
		Long: `Check that the marker patterns compile, that mapping overrides keep the
character map one-to-one, and that a sample document converts.`,
		Example: `  # Check the default config file
  ucv config check

  # Check another file
  ucv config check -c ./ucv.yml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runCheck(config.ResolvePath(configPath), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCheck(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}
	if w == nil {
		w = os.Stdout
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Checking %s...\n", configPath)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Could not load config:", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid settings:", err)
		fmt.Fprintln(w, "\nReconfigure with: ucv init")
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Marker patterns compile")

	processor, err := cfg.Build()
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Character map rejected:", err)
		fmt.Fprintln(w, "\nCheck the mapping section with: ucv config show")
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Fprintf(w, "✓ Character map is one-to-one (%d entries)\n", processor.CharacterMap().Len())

	out, err := processor.Run(translit.ModeLatex, sampleDocument)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Sample conversion failed:", err)
		return fmt.Errorf("sample conversion failed: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Sample conversion succeeded")

	fmt.Fprintf(w, "\n  %s\n  %s\n", sampleDocument[1], out[1])

	return nil
}
