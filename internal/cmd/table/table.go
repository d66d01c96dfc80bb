// Package table provides the table command, which prints the character map.
package table

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"github.com/open-cli-collective/urdu-convert/internal/config"
	"github.com/open-cli-collective/urdu-convert/internal/view"
	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

type tableOptions struct {
	reverse    bool
	output     string
	configPath string
	noColor    bool

	stdout io.Writer
}

// NewCmdTable creates the table command.
func NewCmdTable() *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table [chars]",
		Short: "Show the keyboard-to-Urdu character map",
		Long: `Show the character map in use, including any mapping overrides from the
config file. Pass characters to show only their rows.`,
		Example: `  # Show the full map
  ucv table

  # Look up a few keys
  ucv table qwe

  # Sort by Urdu character
  ucv table --reverse

  # Output as JSON
  ucv table -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()

			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			return runTable(filter, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Sort by Urdu character and match filter characters against Urdu")

	return cmd
}

func runTable(filter string, opts *tableOptions) error {
	cfg, err := config.LoadWithEnv(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.output == "" {
		opts.output = cfg.OutputFormat
	}
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	processor, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	entries := selectEntries(processor.CharacterMap().Entries(), filter, opts.reverse)
	if filter != "" && len(entries) == 0 {
		return fmt.Errorf("no mapping for %q", filter)
	}

	headers := []string{"KEY", "URDU", "CODEPOINT", "NAME"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			string(e.Source),
			string(e.Target),
			fmt.Sprintf("U+%04X", e.Target),
			runenames.Name(e.Target),
		})
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}
	renderer.RenderTable(headers, rows)
	return nil
}

// selectEntries filters entries to those whose key (or, when reverse is set,
// Urdu character) appears in filter, and orders them.
func selectEntries(entries []translit.Entry, filter string, reverse bool) []translit.Entry {
	var out []translit.Entry
	for _, e := range entries {
		r := e.Source
		if reverse {
			r = e.Target
		}
		if filter == "" || strings.ContainsRune(filter, r) {
			out = append(out, e)
		}
	}

	if reverse {
		sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	}
	return out
}
