// Package config provides configuration management for profiler.
//
// Configuration is loaded from these sources, highest precedence first:
//  1. CLI flags
//  2. Environment variables (PROFILER_ prefix, plus PORT)
//  3. Config file (.profiler.yaml)
//  4. Defaults
//
// A .env file in the working directory is loaded into the environment at
// startup, so its values count as environment variables.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Supported server modes, matching gin's.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

const (
	DefaultAddr           = ":8080"
	DefaultMaxUploadBytes = 10 << 20 // 10MB
	DefaultMaxRows        = 10000
	DefaultSeed           = 42
)

// Config represents the global configuration for profiler.
type Config struct {
	// Addr is the listen address for the dashboard server.
	Addr string `mapstructure:"addr" json:"addr"`

	// Mode is the gin mode: debug, release, test.
	Mode string `mapstructure:"mode" json:"mode"`

	// LogLevel controls the verbosity of log output.
	LogLevel string `mapstructure:"log-level" json:"logLevel"`

	// LogFormat controls the format of log output: text or json.
	LogFormat string `mapstructure:"log-format" json:"logFormat"`

	// Quiet suppresses all log output below error level.
	Quiet bool `mapstructure:"quiet" json:"quiet"`

	// Profile is an optional YAML file overriding the built-in profile.
	Profile string `mapstructure:"profile" json:"profile"`

	// Watch reloads Profile when the file changes.
	Watch bool `mapstructure:"watch" json:"watch"`

	MaxUploadBytes int64 `mapstructure:"max-upload-bytes" json:"maxUploadBytes"`
	MaxRows        int   `mapstructure:"max-rows" json:"maxRows"`

	// Seed drives the synthetic emissions series.
	Seed uint64 `mapstructure:"seed" json:"seed"`

	ConfigFile string `mapstructure:"-" json:"-"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Addr:           DefaultAddr,
		Mode:           ModeRelease,
		LogLevel:       LogLevelInfo,
		LogFormat:      LogFormatText,
		MaxUploadBytes: DefaultMaxUploadBytes,
		MaxRows:        DefaultMaxRows,
		Seed:           DefaultSeed,
	}
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return errors.Newf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Newf("invalid log format %q: must be one of text, json", c.LogFormat)
	}

	switch c.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return errors.Newf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}

	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.Newf("max-upload-bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.MaxRows <= 0 {
		return errors.Newf("max-rows must be positive, got %d", c.MaxRows)
	}
	if c.Watch && c.Profile == "" {
		return errors.New("watch requires a profile file")
	}

	return nil
}

// EffectiveLogLevel returns the log level to use. Quiet forces "error".
func (c *Config) EffectiveLogLevel() string {
	if c.Quiet {
		return LogLevelError
	}

	return c.LogLevel
}

// Load initialises configuration from flags, environment variables, and an
// optional config file. A fresh viper instance is used on every call.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	configureEnv(v)

	if err := configureFile(v, configFile); err != nil {
		return nil, err
	}

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("profile", d.Profile)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("max-upload-bytes", d.MaxUploadBytes)
	v.SetDefault("max-rows", d.MaxRows)
	v.SetDefault("seed", d.Seed)
}

// configureEnv sets up PROFILER_* variables. A bare PORT, as set by most
// hosting platforms, fills in addr when PROFILER_ADDR is absent.
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("PROFILER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if port := os.Getenv("PORT"); port != "" && os.Getenv("PROFILER_ADDR") == "" {
		v.SetDefault("addr", ":"+port)
	}
}

func configureFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %q", configFile)
		}

		return nil
	}

	v.SetConfigName(".profiler")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "profiler"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "parsing config file")
	}

	return nil
}

// bindFlags binds cmd's own flags and the persistent flags of every ancestor.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	for c := cmd; c != nil; c = c.Parent() {
		if err := v.BindPFlags(c.PersistentFlags()); err != nil {
			return errors.Wrap(err, "binding persistent flags")
		}
	}

	return nil
}

type ctxKey struct{}

// NewContext returns a child context carrying cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext extracts a Config from ctx, falling back to Default().
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}

	return Default()
}
