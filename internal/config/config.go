// Package config loads tql settings from tql.toml, TQL_* environment
// variables and defaults, using viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/tql/internal/errors"
)

// FileName is the base name searched for in the working directory when no
// explicit config path is given.
const FileName = "tql"

// EnvPrefix prefixes every environment override, e.g. TQL_DATABASE_PATH.
const EnvPrefix = "TQL"

// Config is the complete tql configuration.
type Config struct {
	Format   string         `mapstructure:"format"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig locates the saved filter store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "text")
	v.SetDefault("database.path", "tql.db")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// NewViper builds a viper instance with defaults, environment binding and,
// when present, a config file. An explicit path must exist; without one a
// tql.toml in the working directory is used if found.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		return v, nil
	}

	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read tql.toml")
		}
	}
	return v, nil
}

// Load reads the configuration for path (empty for the default lookup).
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return errors.WithHint(
			errors.Newf("invalid format %q", c.Format),
			"use \"text\" or \"json\"",
		)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path must not be empty")
	}
	return nil
}
