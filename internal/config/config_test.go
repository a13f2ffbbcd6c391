package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newTestRootCmd mirrors the persistent flags of the real root command.
func newTestRootCmd() *cobra.Command {
	cmd := &cobra.Command{}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "")
	pf.String("log-level", "info", "")
	pf.String("log-format", "text", "")
	pf.BoolP("quiet", "q", false, "")

	return cmd
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

// chdirTemp moves into an empty directory so no stray .profiler.yaml is
// found, and clears PORT.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
}

// ---------------------------------------------------------------------------
// Default / Validate
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, ModeRelease, cfg.Mode)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, DefaultMaxRows, cfg.MaxRows)
	assert.Equal(t, uint64(DefaultSeed), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
		{"mode", func(c *Config) { c.Mode = "prod" }, "invalid mode"},
		{"addr", func(c *Config) { c.Addr = "" }, "addr must not be empty"},
		{"upload size", func(c *Config) { c.MaxUploadBytes = 0 }, "max-upload-bytes"},
		{"rows", func(c *Config) { c.MaxRows = -1 }, "max-rows"},
		{"watch without profile", func(c *Config) { c.Watch = true }, "watch requires a profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestEffectiveLogLevel(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).EffectiveLogLevel())
	assert.Equal(t, "error", (&Config{LogLevel: "debug", Quiet: true}).EffectiveLogLevel())
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_DefaultsOnly(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, uint64(DefaultSeed), cfg.Seed)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PROFILER_LOG_LEVEL", "debug")
	t.Setenv("PROFILER_MAX_ROWS", "50")

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, 50, cfg.MaxRows)
}

func TestLoad_PortEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_ProfilerAddrBeatsPort(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PROFILER_ADDR", "127.0.0.1:7000")

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeTempConfig(t, "log-format: json\nseed: 7\nmode: debug\n")

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, ModeDebug, cfg.Mode)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_AutoDiscoversDotFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".profiler.yaml", []byte("max-rows: 12\n"), 0o600))

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxRows)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoad_FlagBeatsEnvAndFile(t *testing.T) {
	path := writeTempConfig(t, "log-level: warn\n")
	t.Setenv("PROFILER_LOG_LEVEL", "error")

	cmd := newTestRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "debug"))

	cfg, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	path := writeTempConfig(t, "log-level: chatty\n")

	_, err := Load(nil, path)
	assert.ErrorContains(t, err, "invalid log level")
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

func TestContext_RoundTrip(t *testing.T) {
	cfg := &Config{Addr: ":1"}
	assert.Same(t, cfg, FromContext(NewContext(context.Background(), cfg)))
}

func TestFromContext_FallbackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
}
