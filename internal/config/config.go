// Package config provides configuration management for ucv.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/urdu-convert/pkg/translit"
)

// Config holds the ucv configuration.
type Config struct {
	Whitelist        []string          `yaml:"whitelist,omitempty"`
	ActivationMarker string            `yaml:"activation_marker,omitempty"`
	PassthroughBegin string            `yaml:"passthrough_begin,omitempty"`
	PassthroughEnd   string            `yaml:"passthrough_end,omitempty"`
	Mapping          map[string]string `yaml:"mapping,omitempty"`
	OutputFormat     string            `yaml:"output_format,omitempty"`
}

// Default returns a configuration holding the built-in settings.
func Default() *Config {
	return &Config{
		Whitelist:        translit.DefaultWhitelist().Names(),
		ActivationMarker: translit.DefaultActivationMarker,
		PassthroughBegin: translit.DefaultPassthroughBegin,
		PassthroughEnd:   translit.DefaultPassthroughEnd,
	}
}

// Validate checks that markers compile and mapping entries are single
// characters.
func (c *Config) Validate() error {
	if _, err := c.markers(); err != nil {
		return err
	}
	if _, err := c.overrides(); err != nil {
		return err
	}
	return nil
}

// Build turns the configuration into a Processor. Empty fields fall back to
// the built-in defaults; mapping entries override the built-in table. A
// mapping that makes the table non-injective yields a
// *translit.ConfigurationError.
func (c *Config) Build() (*translit.Processor, error) {
	markers, err := c.markers()
	if err != nil {
		return nil, err
	}

	overrides, err := c.overrides()
	if err != nil {
		return nil, err
	}

	cm, err := translit.NewCharacterMap(translit.Merge(translit.DefaultTable(), overrides))
	if err != nil {
		return nil, err
	}

	whitelist := translit.DefaultWhitelist()
	if len(c.Whitelist) > 0 {
		whitelist = translit.NewWhitelist(c.Whitelist...)
	}

	return translit.NewProcessor(cm, whitelist, markers), nil
}

func (c *Config) markers() (translit.Markers, error) {
	return translit.CompileMarkers(
		valueOr(c.ActivationMarker, translit.DefaultActivationMarker),
		valueOr(c.PassthroughBegin, translit.DefaultPassthroughBegin),
		valueOr(c.PassthroughEnd, translit.DefaultPassthroughEnd),
	)
}

func (c *Config) overrides() (map[rune]rune, error) {
	overrides := make(map[rune]rune, len(c.Mapping))

	// Sorted so the first reported problem is stable
	keys := make([]string, 0, len(c.Mapping))
	for k := range c.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := c.Mapping[k]
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("mapping key %q must be a single character", k)
		}
		if utf8.RuneCountInString(v) != 1 {
			return nil, fmt.Errorf("mapping value %q for key %q must be a single character", v, k)
		}
		src, _ := utf8.DecodeRuneInString(k)
		dst, _ := utf8.DecodeRuneInString(v)
		overrides[src] = dst
	}

	return overrides, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if wl := os.Getenv("UCV_WHITELIST"); wl != "" {
		c.Whitelist = splitList(wl)
	}
	if v := os.Getenv("UCV_ACTIVATION_MARKER"); v != "" {
		c.ActivationMarker = v
	}
	if v := os.Getenv("UCV_PASSTHROUGH_BEGIN"); v != "" {
		c.PassthroughBegin = v
	}
	if v := os.Getenv("UCV_PASSTHROUGH_END"); v != "" {
		c.PassthroughEnd = v
	}
	if v := os.Getenv("UCV_OUTPUT"); v != "" {
		c.OutputFormat = v
	}
}

// EnvVars lists the environment variables read by LoadFromEnv.
var EnvVars = []string{
	"UCV_WHITELIST",
	"UCV_ACTIVATION_MARKER",
	"UCV_PASSTHROUGH_BEGIN",
	"UCV_PASSTHROUGH_END",
	"UCV_OUTPUT",
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ucv", "config.yml")
	}

	// Fall back to ~/.config/ucv/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ucv", "config.yml")
	}

	return filepath.Join(home, ".config", "ucv", "config.yml")
}

// ResolvePath returns path if set, otherwise DefaultConfigPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; a malformed one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
