// Package config loads graphexport settings.
//
// Settings are resolved in this order, later sources winning:
//
//  1. Built-in defaults ([Defaults])
//  2. A config file: the --config path, or graphexport.{yaml,yml,toml,json}
//     in the current directory or $XDG_CONFIG_HOME/graphexport
//  3. GRAPHEXPORT_* environment variables (GRAPHEXPORT_MAX_DEPTH, ...)
//  4. Command-line flags bound with [Bind]
//
// Example config file:
//
//	formats: [xml, json]
//	max_depth: 64
//	cache:
//	  enabled: true
//	  ttl: 30m
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/pipeline"
)

const (
	appName   = "graphexport"
	envPrefix = "GRAPHEXPORT"
)

// envReplacer maps nested keys to environment names: cache.ttl → CACHE_TTL.
var envReplacer = strings.NewReplacer(".", "_")

// Config holds all user-tunable settings.
type Config struct {
	Formats  []string    `mapstructure:"formats"`
	MaxDepth int         `mapstructure:"max_depth"`
	Detailed bool        `mapstructure:"detailed"`
	Verbose  bool        `mapstructure:"verbose"`
	Cache    CacheConfig `mapstructure:"cache"`
}

// CacheConfig controls the in-memory artifact cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Formats: []string{pipeline.DefaultFormat},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     pipeline.TTLArtifact,
		},
	}
}

// New returns a viper instance with defaults and environment binding set
// up, and the config file read. An empty file searches the default
// locations; a missing default file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("formats", defaults.Formats)
	v.SetDefault("max_depth", defaults.MaxDepth)
	v.SetDefault("detailed", defaults.Detailed)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
		}
	}
	return v, nil
}

// Bind makes flags override file and environment values. Flags are looked
// up by key with underscores replaced by dashes ("max_depth" → --max-depth);
// keys without a matching flag are skipped.
func Bind(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(flagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "bind flag %s", f.Name)
		}
	}
	return nil
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and format names.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return pipeline.ValidateFormats(c.Formats)
}

// PipelineOptions converts the settings into pipeline options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Formats:  append([]string(nil), c.Formats...),
		MaxDepth: c.MaxDepth,
		Detailed: c.Detailed,
	}
}

// configDir returns $XDG_CONFIG_HOME/graphexport, defaulting to
// ~/.config/graphexport.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func flagName(key string) string {
	return strings.NewReplacer("_", "-", ".", "-").Replace(key)
}
