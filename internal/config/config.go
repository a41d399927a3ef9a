// Package config loads generator settings from flags, environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FIXTURE_COUNT.
const EnvPrefix = "FIXTURE"

const (
	DefaultCount         = 100000
	DefaultOutput        = "public/data/products.csv"
	DefaultProgressEvery = 5000
	DefaultTop           = 5
	DefaultLogLevel      = "info"
)

// Config holds all generator settings.
type Config struct {
	Count         int    `mapstructure:"count" validate:"gte=0"`
	Output        string `mapstructure:"output" validate:"required"`
	Seed          uint64 `mapstructure:"seed"`
	ProgressEvery int    `mapstructure:"progress_every" validate:"gt=0"`
	ProgressBar   bool   `mapstructure:"progress_bar"`
	Top           int    `mapstructure:"top_categories" validate:"gte=1"`
	HistoryDB     string `mapstructure:"history_db"`
	LogLevel      string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Flags returns a flag set carrying every setting with its default.
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.Int("count", DefaultCount, "Number of product records to generate")
	flags.String("output", DefaultOutput, "Output CSV file path")
	flags.Uint64("seed", 0, "Random seed (0 picks one and logs it)")
	flags.Int("progress-every", DefaultProgressEvery, "Records between progress notifications")
	flags.Bool("progress-bar", false, "Draw a progress bar instead of progress log lines")
	flags.Int("top", DefaultTop, "Number of categories in the ranking")
	flags.String("history-db", "", "bbolt file recording generation runs (empty = disabled)")
	flags.String("log-level", DefaultLogLevel, "Log level: debug, info, warn, error")
	return flags
}

var flagKeys = map[string]string{
	"count":          "count",
	"output":         "output",
	"seed":           "seed",
	"progress-every": "progress_every",
	"progress-bar":   "progress_bar",
	"top":            "top_categories",
	"history-db":     "history_db",
	"log-level":      "log_level",
}

// Load resolves settings with precedence flags > environment > .env > defaults.
// envFiles defaults to ".env"; a missing file is not an error.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("count", DefaultCount)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("seed", 0)
	v.SetDefault("progress_every", DefaultProgressEvery)
	v.SetDefault("progress_bar", false)
	v.SetDefault("top_categories", DefaultTop)
	v.SetDefault("history_db", "")
	v.SetDefault("log_level", DefaultLogLevel)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
