// Package config assembles weatherpath's runtime configuration from, in
// increasing precedence: built-in defaults, an optional YAML file, a .env
// file, WEATHERPATH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/network"
)

// EnvPrefix prefixes every environment variable, e.g. WEATHERPATH_DATA.
const EnvPrefix = "WEATHERPATH"

// Run modes.
const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

// Config holds the application's configuration.
type Config struct {
	DataFile     string   `mapstructure:"data"`
	SaveFile     string   `mapstructure:"save"`
	Regime       string   `mapstructure:"regime"`
	Mode         string   `mapstructure:"mode"`
	Addr         string   `mapstructure:"addr"`
	LogLevel     string   `mapstructure:"log_level"`
	CenterPolicy string   `mapstructure:"center_policy"`
	CreateSample bool     `mapstructure:"create_sample"`
	CacheSize    int      `mapstructure:"cache_size"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// flag name → viper key
var flagKeys = map[string]string{
	"data":          "data",
	"save":          "save",
	"regime":        "regime",
	"mode":          "mode",
	"addr":          "addr",
	"log-level":     "log_level",
	"center-policy": "center_policy",
	"create-sample": "create_sample",
	"cache-size":    "cache_size",
	"cors-origins":  "cors_origins",
}

// NewFlagSet declares every flag understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a YAML config file")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("data", "roads.txt", "road file to load")
	flags.String("save", "", "road file written on exit (defaults to --data)")
	flags.String("regime", "normal", "initial weather regime (normal|rain|snow|storm)")
	flags.String("mode", ModeConsole, "run mode (console|http)")
	flags.String("addr", ":8080", "HTTP listen address")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("center-policy", floyd.CenterStrict.String(), "center rule (strict|reachable-only)")
	flags.Bool("create-sample", false, "write the sample network when the data file is missing")
	flags.Int("cache-size", 4, "number of cached solutions")
	flags.StringSlice("cors-origins", nil, "allowed CORS origins for http mode")

	return flags
}

// Load parses args with flags and resolves the final configuration. Missing
// config and .env files are not errors.
func Load(flags *pflag.FlagSet, args []string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}

	if envFile, _ := flags.GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not read env file", zap.String("path", envFile), zap.Error(err))
			}
		}
	}

	v := viper.New()
	v.SetDefault("data", "roads.txt")
	v.SetDefault("save", "")
	v.SetDefault("regime", "normal")
	v.SetDefault("mode", ModeConsole)
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("center_policy", floyd.CenterStrict.String())
	v.SetDefault("create_sample", false)
	v.SetDefault("cache_size", 4)
	v.SetDefault("cors_origins", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", flag, err)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.SaveFile == "" {
		cfg.SaveFile = cfg.DataFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("config: data file is required")
	}
	if _, err := c.ParsedRegime(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.ParsedCenterPolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Mode != ModeConsole && c.Mode != ModeHTTP {
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: cache size must be > 0, got %d", c.CacheSize)
	}

	return nil
}

// ParsedRegime resolves Regime.
func (c *Config) ParsedRegime() (network.Regime, error) {
	return network.ParseRegime(c.Regime)
}

// ParsedCenterPolicy resolves CenterPolicy.
func (c *Config) ParsedCenterPolicy() (floyd.CenterPolicy, error) {
	return floyd.ParseCenterPolicy(c.CenterPolicy)
}
