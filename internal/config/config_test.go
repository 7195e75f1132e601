package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROUTEPLANNER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "", cfg.Scenario)
	require.Equal(t, "renders", cfg.RenderDir)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Empty(t, cfg.MetricsPath)
	require.False(t, cfg.Text)
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("ROUTEPLANNER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ROUTEPLANNER_SCENARIO", "2")
	t.Setenv("ROUTEPLANNER_LOG_LEVEL", "debug")
	t.Setenv("ROUTEPLANNER_TEXT", "yes")

	cfg, err := Load([]string{"-log-level", "error", "-render-dir="}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "2", cfg.Scenario, "env beats default")
	require.Equal(t, "error", cfg.LogLevel, "flag beats env")
	require.Equal(t, "", cfg.RenderDir, "explicit empty flag disables renders")
	require.True(t, cfg.Text)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.env")
	require.NoError(t, os.WriteFile(path, []byte("ROUTEPLANNER_METRICS_PATH=/tmp/route.prom\nROUTEPLANNER_SCENARIO=1\n"), 0o600))
	t.Setenv("ROUTEPLANNER_SCENARIO", "2")
	t.Cleanup(func() { os.Unsetenv("ROUTEPLANNER_METRICS_PATH") })

	cfg, err := Load([]string{"-env-file", path}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, path, cfg.EnvFile)
	require.Equal(t, "/tmp/route.prom", cfg.MetricsPath)
	require.Equal(t, "2", cfg.Scenario, "the env file never overrides the real environment")
}

func TestLoadRejects(t *testing.T) {
	t.Setenv("ROUTEPLANNER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-log-format", "xml"}},
		{"bad level", []string{"-log-level", "trace"}},
		{"from without to", []string{"-from", "A"}},
		{"positional", []string{"extra"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.args, io.Discard)
			require.Error(t, err)
		})
	}

	_, err := Load([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestEnvFileFromArgs(t *testing.T) {
	require.Equal(t, "a.env", envFileFromArgs([]string{"-env-file", "a.env"}, ".env"))
	require.Equal(t, "b.env", envFileFromArgs([]string{"--env-file=b.env"}, ".env"))
	require.Equal(t, ".env", envFileFromArgs([]string{"-scenario", "1"}, ".env"))
}
