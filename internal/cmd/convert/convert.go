// Package convert provides the convert command.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/config"
	"github.com/open-cli-collective/urdu-convert/internal/document"
	"github.com/open-cli-collective/urdu-convert/internal/view"
	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

type convertOptions struct {
	u2e        bool
	e2u        bool
	latex      bool
	mode       string
	out        string
	whitelist  []string
	output     string
	configPath string
	noColor    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert text between English keyboard input and Urdu",
		Long: `Convert files (or standard input) between English keyboard input and Urdu.

Exactly one mode is expected. If several are given, --latex wins, then --u2e,
then --e2u. --mode names the mode instead and is used only when none of the
mode flags is set.

In --latex mode lines before \begin{document} and lines between
\begin{english} and \end{english} are copied unchanged. Elsewhere, commands
and their arguments are kept as written, except for whitelisted commands
(see 'ucv config show') whose arguments are converted.`,
		Example: `  # Convert a LaTeX document
  ucv convert --latex paper.tex -O paper-ur.tex

  # Convert plain text from stdin
  echo "slam" | ucv convert --e2u

  # Convert Urdu back to English keyboard input
  ucv convert --u2e notes.txt

  # Name the mode, e.g. from a script variable
  ucv convert --mode "$MODE" notes.txt

  # Also convert the arguments of \dialog and \speaker
  ucv convert -l --whitelist dialog --whitelist speaker play.tex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runConvert(args, opts)
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return []string{"tex", "txt"}, cobra.ShellCompDirectiveFilterFileExt
		},
	}

	cmd.Flags().BoolVarP(&opts.u2e, "u2e", "u", false, "Convert Urdu to English keyboard input")
	cmd.Flags().BoolVarP(&opts.e2u, "e2u", "e", false, "Convert English keyboard input to Urdu")
	cmd.Flags().BoolVarP(&opts.latex, "latex", "l", false, "Convert a LaTeX document to Urdu, keeping markup")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Conversion mode by name: u2e, e2u, latex")
	cmd.Flags().StringVarP(&opts.out, "out", "O", "", "Write output to file instead of stdout")
	cmd.Flags().StringSliceVar(&opts.whitelist, "whitelist", nil, "Additional commands whose arguments are converted (repeatable)")
	_ = cmd.MarkFlagFilename("out", "tex", "txt")

	return cmd
}

func runConvert(files []string, opts *convertOptions) error {
	mode, err := translit.SelectMode(opts.u2e, opts.e2u, opts.latex)
	if errors.Is(err, translit.ErrNoMode) && opts.mode != "" {
		mode, err = translit.ParseMode(opts.mode)
	}
	if err != nil {
		return err
	}

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

	// Build before reading input so a bad table fails first
	processor, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(opts.whitelist) > 0 {
		processor = translit.NewProcessor(processor.CharacterMap(),
			processor.Whitelist().With(opts.whitelist...), processor.Markers())
	}

	if len(files) == 0 {
		files = []string{document.StdioName}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(opts.stdout)
	renderer.SetErrWriter(opts.stderr)

	var converted []string
	for _, name := range files {
		lines, err := readInput(name, opts.stdin)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			renderer.Warn(fmt.Sprintf("%s: empty input", displayName(name)))
		}

		out, err := processor.Run(mode, lines)
		if err != nil {
			var unterminated *translit.UnterminatedCommandError
			if errors.As(err, &unterminated) {
				renderer.Error(fmt.Sprintf("%s:%d:%d: unterminated argument for \\%s",
					displayName(name), unterminated.Line, unterminated.Column, unterminated.Command))
				renderer.Error(unterminated.Content)
			}
			return fmt.Errorf("%s: %w", displayName(name), err)
		}

		if mode == translit.ModeLatex {
			warnBlockState(renderer, displayName(name), processor.Markers(), lines)
		}

		converted = append(converted, out...)
	}

	if opts.out != "" {
		if err := document.WriteFile(opts.out, opts.stdout, converted); err != nil {
			return err
		}
		if opts.output != string(view.FormatJSON) {
			renderer.Success(fmt.Sprintf("Converted %d lines (%s) to %s", len(converted), mode, opts.out))
		}
		return nil
	}

	if opts.output == string(view.FormatJSON) {
		return renderer.RenderLines(converted)
	}
	return document.Write(opts.stdout, converted)
}

// warnBlockState reports documents that never reach the activation marker or
// end inside an English block.
func warnBlockState(renderer *view.Renderer, name string, m translit.Markers, lines []string) {
	if len(lines) == 0 {
		return
	}

	tracker := translit.NewBlockTracker(m)
	for _, line := range lines {
		tracker.Classify(line)
	}

	switch tracker.State() {
	case translit.StateBeforeActivation:
		renderer.Warn(fmt.Sprintf("%s: activation marker not found, nothing was converted", name))
	case translit.StateInPassthrough:
		renderer.Warn(fmt.Sprintf("%s: English block is not closed", name))
	}
}

func readInput(name string, stdin io.Reader) ([]string, error) {
	if name == document.StdioName {
		if stdin == nil {
			stdin = os.Stdin
		}
		lines, err := document.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return lines, nil
	}

	lines, err := document.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}

func displayName(name string) string {
	if name == document.StdioName {
		return "<stdin>"
	}
	return name
}
