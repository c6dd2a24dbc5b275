// Package config loads the formcore host configuration: a YAML file layered
// over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcore/pkg/render"
)

// Config is the host configuration. Zero values in a loaded file keep the
// defaults.
type Config struct {
	Addr         string `yaml:"addr"`
	Vocabulary   string `yaml:"vocabulary"`
	Locale       string `yaml:"locale"`
	MethodPolicy string `yaml:"method_policy"`
	MethodField  string `yaml:"method_field"`
	CSRFField    string `yaml:"csrf_field"`
	PagesDir     string `yaml:"pages_dir"`
	LayoutsDir   string `yaml:"layouts_dir"`
	LocalesDir   string `yaml:"locales_dir"`
	Log          Log    `yaml:"log"`
	Theme        Theme  `yaml:"theme"`
}

// Log configures the zerolog logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Theme carries static token overrides keyed by vocabulary then role.
type Theme struct {
	Tokens map[string]map[string]string `yaml:"tokens"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		Vocabulary:   "web",
		Locale:       "en",
		MethodPolicy: render.MethodOverridePolicy.String(),
		MethodField:  render.DefaultMethodField,
		CSRFField:    render.DefaultCSRFField,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}
	cfg.fill()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.MethodPolicy)) {
	case render.MethodOverridePolicy.String(), render.MethodNativePolicy.String():
	default:
		return fmt.Errorf("config: unknown method policy %q", c.MethodPolicy)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Policy returns the parsed method policy.
func (c Config) Policy() render.MethodPolicy {
	return render.ParseMethodPolicy(c.MethodPolicy)
}

// ThemeFor returns the static token overrides for vocabulary.
func (c Config) ThemeFor(vocabulary string) render.Theme {
	tokens := c.Theme.Tokens[strings.ToLower(strings.TrimSpace(vocabulary))]
	if len(tokens) == 0 {
		return render.Theme{}
	}
	out := render.Theme{Tokens: make(map[string]string, len(tokens))}
	for role, value := range tokens {
		out.Tokens[role] = value
	}
	return out
}

// RenderOptions converts the configuration into renderer options.
func (c Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithMethodPolicy(c.Policy()),
		render.WithHiddenFieldNames(c.MethodField, c.CSRFField),
	}
}

func (c *Config) fill() {
	defaults := Default()
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = defaults.Addr
	}
	if strings.TrimSpace(c.Vocabulary) == "" {
		c.Vocabulary = defaults.Vocabulary
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = defaults.Locale
	}
	if strings.TrimSpace(c.MethodPolicy) == "" {
		c.MethodPolicy = defaults.MethodPolicy
	}
	if strings.TrimSpace(c.MethodField) == "" {
		c.MethodField = defaults.MethodField
	}
	if strings.TrimSpace(c.CSRFField) == "" {
		c.CSRFField = defaults.CSRFField
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = defaults.Log.Level
	}
	if strings.TrimSpace(c.Log.Format) == "" {
		c.Log.Format = defaults.Log.Format
	}
}
