package configcmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/urdu-convert/internal/config"
	"github.com/open-cli-collective/urdu-convert/internal/view"
	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

type showOptions struct {
	configPath string
	output     string
	noColor    bool
	stdout     io.Writer
}

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective ucv configuration with the source of each setting.`,
		Example: `  # Show current config
  ucv config show

  # As JSON
  ucv config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runShow(opts)
		},
	}

	return cmd
}

// setting is one row of config show output.
type setting struct {
	label  string
	key    string
	value  string
	source string
}

func runShow(opts *showOptions) error {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}

	configPath := config.ResolvePath(opts.configPath)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	settings := []setting{
		resolve("Whitelist", "whitelist",
			strings.Join(cfg.Whitelist, ", "), len(fileCfg.Whitelist) > 0,
			strings.Join(translit.DefaultWhitelist().Names(), ", "), "UCV_WHITELIST"),
		resolve("Activation", "activation_marker",
			cfg.ActivationMarker, fileCfg.ActivationMarker != "",
			translit.DefaultActivationMarker, "UCV_ACTIVATION_MARKER"),
		resolve("English on", "passthrough_begin",
			cfg.PassthroughBegin, fileCfg.PassthroughBegin != "",
			translit.DefaultPassthroughBegin, "UCV_PASSTHROUGH_BEGIN"),
		resolve("English off", "passthrough_end",
			cfg.PassthroughEnd, fileCfg.PassthroughEnd != "",
			translit.DefaultPassthroughEnd, "UCV_PASSTHROUGH_END"),
		resolve("Output", "output_format",
			cfg.OutputFormat, fileCfg.OutputFormat != "",
			string(view.FormatPlain), "UCV_OUTPUT"),
		resolve("Mapping", "mapping",
			formatMapping(cfg.Mapping), len(cfg.Mapping) > 0,
			"-", ""),
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(opts.stdout)

	if opts.output == string(view.FormatJSON) {
		result := make(map[string]string, len(settings)+1)
		for _, s := range settings {
			result[s.key] = s.value
		}
		result["config_file"] = configPath
		return renderer.RenderJSON(result)
	}

	for _, s := range settings {
		renderer.RenderKeyValue(s.label, fmt.Sprintf("%s  (source: %s)", s.value, s.source))
	}

	renderer.RenderText("")
	renderer.RenderText("Config file: " + configPath)
	if fileErr != nil {
		renderer.RenderText("(file not found)")
	}

	return nil
}

// resolve picks the effective value of a setting and names where it came
// from: an environment variable, the config file, or the built-in default.
func resolve(label, key, value string, inFile bool, fallback, envVar string) setting {
	if envVar != "" && os.Getenv(envVar) != "" {
		return setting{label, key, value, envVar}
	}
	if value != "" && inFile {
		return setting{label, key, value, "config"}
	}
	return setting{label, key, fallback, "default"}
}

func formatMapping(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m[k])
	}
	return strings.Join(pairs, " ")
}
