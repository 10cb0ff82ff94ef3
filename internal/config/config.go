package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked up in the user's home directory when no
// config path is given.
const DefaultFilename = ".loxite.yaml"

// Config holds the settings shared by the CLI and the REPL.
type Config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	Color        bool   `yaml:"color"`
	Pretty       bool   `yaml:"pretty"`
	ShowTokens   bool   `yaml:"show_tokens"`
	ShowAST      bool   `yaml:"show_ast"`
	Lint         bool   `yaml:"lint"`
	Engine       string `yaml:"engine"`
	LogVerbosity int    `yaml:"log_verbosity"`
	LogFile      string `yaml:"log_file"`
}

func Default() *Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".loxite_history")
	}
	return &Config{
		Prompt:      "> ",
		HistoryFile: history,
		Color:       true,
		Engine:      "descent",
	}
}

// DefaultPath returns $HOME/.loxite.yaml, or "" when there is no home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFilename)
}

// Load reads path over the defaults and applies environment overrides.
// A missing or empty file leaves the defaults in place; an unknown key is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if _, ok := lookup("LOXITE_NO_COLOR"); ok {
		c.Color = false
	}
	if engine, ok := lookup("LOXITE_ENGINE"); ok {
		c.Engine = engine
	}
	if verbosity, ok := lookup("LOXITE_LOG_VERBOSITY"); ok {
		v, err := strconv.Atoi(verbosity)
		if err != nil {
			return fmt.Errorf("config: LOXITE_LOG_VERBOSITY: %w", err)
		}
		c.LogVerbosity = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Engine {
	case "descent", "participle":
	default:
		return fmt.Errorf("config: unknown engine %q", c.Engine)
	}
	if c.LogVerbosity < 0 {
		return fmt.Errorf("config: log_verbosity must not be negative")
	}
	return nil
}
