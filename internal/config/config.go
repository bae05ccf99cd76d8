package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"calcnerd/internal/locale"
)

// DefaultPath is where the CLI looks for a config file when --config is unset.
const DefaultPath = ".calcnerd/config.yaml"

// Config holds all calcnerd configuration.
type Config struct {
	// Language selects the message catalog (ru, en).
	Language string `yaml:"language"`

	// Words that abandon the current step, matched case-insensitively.
	QuitWords []string `yaml:"quit_words"`

	// Words accepted as "yes" at the continue prompt.
	ConfirmWords []string `yaml:"confirm_words"`

	// Theme for styled output: auto, light, dark, plain
	Theme string `yaml:"theme"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Language:     string(locale.Default),
		QuitWords:    []string{"выход", "exit"},
		ConfirmWords: []string{"да", "yes"},
		Theme:        "auto",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			File:   "",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("CALC_LANG"); lang != "" {
		c.Language = lang
	}
	if theme := os.Getenv("CALC_THEME"); theme != "" {
		c.Theme = theme
	}
	if level := os.Getenv("CALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("CALC_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

// ValidThemes lists all supported output themes.
var ValidThemes = []string{"auto", "light", "dark", "plain"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := locale.Lookup(locale.Language(c.Language)); err != nil {
		return err
	}

	if len(nonEmpty(c.QuitWords)) == 0 {
		return fmt.Errorf("at least one quit word is required")
	}
	if len(nonEmpty(c.ConfirmWords)) == 0 {
		return fmt.Errorf("at least one confirm word is required")
	}
	for _, q := range c.QuitWords {
		for _, y := range c.ConfirmWords {
			if strings.EqualFold(strings.TrimSpace(q), strings.TrimSpace(y)) {
				return fmt.Errorf("word %q cannot be both a quit and a confirm word", q)
			}
		}
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}

	return c.Logging.Validate()
}

func nonEmpty(words []string) []string {
	var out []string
	for _, w := range words {
		if strings.TrimSpace(w) != "" {
			out = append(out, w)
		}
	}
	return out
}

// ResolvePath returns the config file to use when none is given: the
// project-local .calcnerd/config.yaml if present, else the one in $HOME.
func ResolvePath() string {
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultPath
	}
	return filepath.Join(home, DefaultPath)
}
