package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the wizardwar command configuration.
type Config struct {
	Seed     int64  `env:"WIZARDWAR_SEED"`
	Scenario string `env:"WIZARDWAR_SCENARIO"`
	LogLevel string `env:"WIZARDWAR_LOG_LEVEL" envDefault:"warn"`
	LogJSON  bool   `env:"WIZARDWAR_LOG_JSON"`

	// MetricsDir receives games.csv when set.
	MetricsDir string `env:"WIZARDWAR_METRICS_DIR"`
}

// ParseConfig parses environment and then flags into Config. A positional argument is taken as
// the scenario path when none was set.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random board setup, 0 picks one")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Lua scenario to run instead of an interactive game")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "Write logs as JSON")
	fs.StringVar(&cfg.MetricsDir, "metrics-dir", cfg.MetricsDir, "Directory to append game metrics to (games.csv)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Scenario == "" && fs.NArg() > 0 {
		cfg.Scenario = fs.Arg(0)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
