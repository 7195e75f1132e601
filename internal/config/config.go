// Package config resolves command-line flags, ROUTEPLANNER_* environment
// variables and an optional .env file into a Config.
//
// Precedence is flag, then environment (including values loaded from the
// .env file, which never override variables already set), then default.
package config

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ROUTEPLANNER_"

// Config controls one planner invocation.
type Config struct {
	EnvFile     string
	Scenario    string
	From        string
	To          string
	CatalogPath string
	RenderDir   string
	Text        bool
	LogFormat   string
	LogLevel    string
	MetricsPath string
}

// Load parses args (without the program name) into Config.
// flag.ErrHelp is returned unchanged when -h is given.
func Load(args []string, stderr io.Writer) (*Config, error) {
	envFile := envFileFromArgs(args, envOrDefault("ENV_FILE", ".env"))
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Config{EnvFile: envFile}
	fs := flag.NewFlagSet("routeplanner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.EnvFile, "env-file", envFile, "optional .env file with ROUTEPLANNER_* variables")
	fs.StringVar(&cfg.Scenario, "scenario", envOrDefault("SCENARIO", ""), "scenario key to run without prompting (1 or 2 for the built-in catalog)")
	fs.StringVar(&cfg.From, "from", envOrDefault("FROM", ""), "start location ID or x,y coordinate (default: scenario start)")
	fs.StringVar(&cfg.To, "to", envOrDefault("TO", ""), "destination location ID or x,y coordinate (default: scenario destination)")
	fs.StringVar(&cfg.CatalogPath, "catalog", envOrDefault("CATALOG", ""), "YAML or JSON catalog file (default: built-in network)")
	fs.StringVar(&cfg.RenderDir, "render-dir", envOrDefault("RENDER_DIR", "renders"), "directory for SVG renders; empty disables SVG output")
	fs.BoolVar(&cfg.Text, "text", envOrDefaultBool("TEXT", false), "print a text listing of the network with the route marked")
	fs.StringVar(&cfg.LogFormat, "log-format", envOrDefault("LOG_FORMAT", "console"), "log format: json|console")
	fs.StringVar(&cfg.LogLevel, "log-level", envOrDefault("LOG_LEVEL", "warn"), "log level: debug|info|warn|error")
	fs.StringVar(&cfg.MetricsPath, "metrics-path", envOrDefault("METRICS_PATH", ""), "Prometheus textfile output path; empty disables metrics export")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("config: unexpected arguments %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return errors.Errorf("config: unknown log format %q", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if (c.From == "") != (c.To == "") {
		return errors.New("config: -from and -to must be given together")
	}

	return nil
}

// loadEnvFile loads path into the process environment. A missing file is
// not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "config: load %s", path)
	}

	return nil
}

// envFileFromArgs finds -env-file ahead of the real parse, since the file
// has to be loaded before env-backed defaults are computed.
func envFileFromArgs(args []string, fallback string) string {
	for i, a := range args {
		name := strings.TrimLeft(a, "-")
		if len(name) == len(a) {
			continue
		}
		if v, ok := strings.CutPrefix(name, "env-file="); ok {
			return v
		}
		if name == "env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return fallback
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(EnvPrefix + key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(EnvPrefix + key))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return fallback
	}
}
