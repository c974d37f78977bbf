package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Routes.Strict)
	assert.False(t, cfg.Routes.Sensitive)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  addr: ":8080"
  write_timeout: 30s
routes:
  strict: true
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(file, nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Routes.Strict)
	assert.Equal(t, "json", cfg.Log.Format)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BIOWRITER_SERVER_ADDR", ":9999")
	t.Setenv("BIOWRITER_ROUTES_SENSITIVE", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.True(t, cfg.Routes.Sensitive)
}

func TestLoad_Flags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BIOWRITER_SERVER_ADDR", ":9999")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", "", "")
	fs.Bool("strict", false, "")
	fs.Bool("log-json", false, "")
	fs.Bool("metrics", true, "")
	require.NoError(t, fs.Parse([]string{"--addr", ":7000", "--strict", "--log-json"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr, "flags win over env")
	assert.True(t, cfg.Routes.Strict)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled, "unset flags keep the default")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  Server{Addr: ":3000"},
			Log:     Log{Level: "info", Format: "text"},
			Metrics: Metrics{Enabled: true, Path: "/metrics"},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
	}
	c := valid()
	require.NoError(t, c.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
