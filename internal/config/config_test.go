package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/internal/config"
	"github.com/katalvlaran/weatherpath/network"
)

// noEnvFile keeps a stray .env in the package directory out of the tests.
const noEnvFile = "--env-file="

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewFlagSet("test"), []string{noEnvFile}, nil)
	require.NoError(t, err)
	require.Equal(t, "roads.txt", cfg.DataFile)
	require.Equal(t, "roads.txt", cfg.SaveFile)
	require.Equal(t, config.ModeConsole, cfg.Mode)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 4, cfg.CacheSize)
	require.False(t, cfg.CreateSample)

	r, err := cfg.ParsedRegime()
	require.NoError(t, err)
	require.Equal(t, network.Normal, r)
	p, err := cfg.ParsedCenterPolicy()
	require.NoError(t, err)
	require.Equal(t, floyd.CenterStrict, p)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "weatherpath.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("data: from-file.txt\nregime: snow\naddr: \":9000\"\n"), 0o600))

	t.Setenv("WEATHERPATH_REGIME", "storm")
	t.Setenv("WEATHERPATH_CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load(config.NewFlagSet("test"),
		[]string{noEnvFile, "--config", yml, "--addr", ":7000", "--mode", "http"}, nil)
	require.NoError(t, err)
	require.Equal(t, "from-file.txt", cfg.DataFile, "file beats default")
	require.Equal(t, "storm", cfg.Regime, "env beats file")
	require.Equal(t, ":7000", cfg.Addr, "flag beats file")
	require.Equal(t, config.ModeHTTP, cfg.Mode)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(env, []byte("WEATHERPATH_CENTER_POLICY=reachable-only\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("WEATHERPATH_CENTER_POLICY") })

	cfg, err := config.Load(config.NewFlagSet("test"), []string{"--env-file", env}, nil)
	require.NoError(t, err)
	p, err := cfg.ParsedCenterPolicy()
	require.NoError(t, err)
	require.Equal(t, floyd.CenterReachableOnly, p)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"--regime", "hail"},
		{"--mode", "gui"},
		{"--center-policy", "loose"},
		{"--cache-size", "0"},
		{"--data", ""},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		_, err := config.Load(config.NewFlagSet("test"), append([]string{noEnvFile}, args...), nil)
		require.Error(t, err, "%v", args)
	}

	_, err := config.Load(config.NewFlagSet("test"),
		[]string{noEnvFile, "--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
}

func TestParseLevelAndInitLogger(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, config.ParseLevel("DEBUG"))
	require.Equal(t, zapcore.WarnLevel, config.ParseLevel("warning"))
	require.Equal(t, zapcore.ErrorLevel, config.ParseLevel("error"))
	require.Equal(t, zapcore.InfoLevel, config.ParseLevel("chatty"))

	l, err := config.InitLogger("warn")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))
}
