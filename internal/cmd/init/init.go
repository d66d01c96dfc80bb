// Package init provides the init command for ucv.
package init

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/config"
	"github.com/open-cli-collective/urdu-convert/internal/view"
	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

type initOptions struct {
	configPath string
	whitelist  []string
	output     string
	yes        bool
	noVerify   bool

	stdout io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize ucv configuration",
		Long: `Initialize ucv with the LaTeX settings used for --latex conversion.

This command will guide you through choosing the commands whose arguments are
converted, the marker that starts conversion, and the markers around English
blocks. The configuration will be saved to ~/.config/ucv/config.yml.

Markers are regular expressions. The activation marker matches anywhere in
a line, ignoring case; the English block markers match at the start of a
line.`,
		Example: `  # Interactive setup
  ucv init

  # Write the defaults plus \dialog without prompting
  ucv init --yes --whitelist dialog`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.whitelist, "whitelist", nil, "Commands whose arguments are converted (replaces the defaults)")
	cmd.Flags().StringVar(&opts.output, "default-output", "", "Default output format: plain, json, table")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept values without prompting and overwrite any existing file")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "Skip sample conversion")

	return cmd
}

func runInit(opts *initOptions) error {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	configPath := config.ResolvePath(opts.configPath)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !opts.yes {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(opts.stdout, "Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	if len(opts.whitelist) > 0 {
		cfg.Whitelist = opts.whitelist
	}
	cfg.OutputFormat = opts.output

	if !opts.yes {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := view.ValidateFormat(cfg.OutputFormat); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify unless skipped
	if !opts.noVerify {
		fmt.Fprint(opts.stdout, "Verifying configuration... ")
		sample, err := verifyConfig(cfg)
		if err != nil {
			fmt.Fprintln(opts.stdout, "failed!")
			return fmt.Errorf("configuration verification failed: %w", err)
		}
		fmt.Fprintln(opts.stdout, "success!")
		fmt.Fprintf(opts.stdout, "  %s\n", sample)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(opts.stdout, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(opts.stdout, "\nYou're all set! Try running:")
	fmt.Fprintln(opts.stdout, "  ucv convert --latex paper.tex")
	fmt.Fprintln(opts.stdout, "  ucv table")

	return nil
}

func promptConfig(cfg *config.Config) error {
	whitelist := strings.Join(cfg.Whitelist, ", ")

	output := cfg.OutputFormat
	if output == "" {
		output = string(view.FormatPlain)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Whitelisted commands").
				Description("Commands whose {arguments} are converted, comma separated").
				Value(&whitelist).
				Validate(func(s string) error {
					if len(splitNames(s)) == 0 {
						return fmt.Errorf("at least one command is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Activation marker").
				Description("Lines before the first match are copied unchanged").
				Value(&cfg.ActivationMarker).
				Validate(validatePattern),

			huh.NewInput().
				Title("English block start").
				Value(&cfg.PassthroughBegin).
				Validate(validatePattern),

			huh.NewInput().
				Title("English block end").
				Value(&cfg.PassthroughEnd).
				Validate(validatePattern),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&output),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Whitelist = splitNames(whitelist)
	cfg.OutputFormat = output
	return nil
}

func validatePattern(s string) error {
	if s == "" {
		return fmt.Errorf("pattern is required")
	}
	if _, err := regexp.Compile(s); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

// splitNames splits a comma or space separated list of command names,
// dropping any leading backslash.
func splitNames(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimPrefix(f, `\`); f != "" {
			names = append(names, f)
		}
	}
	return names
}

// verifyConfig builds the configuration and converts a one-line sample with
// the first whitelisted command, returning the converted line.
func verifyConfig(cfg *config.Config) (string, error) {
	processor, err := cfg.Build()
	if err != nil {
		return "", err
	}

	names := processor.Whitelist().Names()
	if len(names) == 0 {
		return "", fmt.Errorf("whitelist is empty")
	}

	// Scanned as active text: the activation marker is user-defined
	scanner := translit.NewScanner(processor.CharacterMap().Lookup(translit.ToUrdu), processor.Whitelist())
	return scanner.ScanLine(fmt.Sprintf(`\%s{slam} dnia`, names[0]))
}
