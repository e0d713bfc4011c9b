// Package config resolves runtime settings from defaults, an optional
// contacts.yaml file and command-line flags, in increasing precedence.
// Environment variables are not consulted.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roach88/contacts/internal/logging"
	"github.com/roach88/contacts/internal/store"
)

// FileName is the config file searched for when none is given explicitly.
const FileName = "contacts.yaml"

// Config holds the resolved runtime settings.
type Config struct {
	File     string `yaml:"file" mapstructure:"file"`
	Backend  string `yaml:"backend" mapstructure:"backend"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Source tells Load where to look.
type Source struct {
	// File is an explicit config path. Reading it must succeed.
	File string
	// Dir is searched for FileName when File is empty. Defaults to ".".
	Dir string
	// Flags, when set, override file values for every key whose flag name
	// matches (file, backend, log-level).
	Flags *pflag.FlagSet
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		File:     store.DefaultPath,
		Backend:  string(store.KindFile),
		LogLevel: logging.DefaultLevel,
	}
}

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	"file":      "file",
	"backend":   "backend",
	"log_level": "log-level",
}

// Load resolves and validates the configuration described by src.
func Load(src Source) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("file", def.File)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("log_level", def.LogLevel)

	path := src.File
	if path == "" {
		path = findConfig(src.Dir)
	}
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if src.Flags != nil {
		for key, name := range flagKeys {
			f := src.Flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfig returns the path of FileName in dir, or "" when there is none.
// Only the exact name matches; an extensionless "contacts" is never read.
func findConfig(dir string) string {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("config: file is required")
	}
	if !slices.Contains(store.Kinds, store.Kind(c.Backend)) {
		return fmt.Errorf("config: backend %q is invalid (must be one of %v)", c.Backend, store.Kinds)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
