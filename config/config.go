package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envSeed     = "SEATING_SEED"
	envLogFile  = "SEATING_LOG_FILE"
	envLogLevel = "SEATING_LOG_LEVEL"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Seed     int64
	LogFile  string
	LogLevel slog.Level

	// LogLevelSet is true when a level was given explicitly rather than defaulted.
	LogLevelSet bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		LogFile:  strings.TrimSpace(os.Getenv(envLogFile)),
		LogLevel: slog.LevelInfo,
	}

	if raw := strings.TrimSpace(os.Getenv(envSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", envSeed, raw, err)
		}
		cfg.Seed = seed
	}

	if raw := strings.TrimSpace(os.Getenv(envLogLevel)); raw != "" {
		level, err := ParseLevel(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
		cfg.LogLevelSet = true
	}

	return cfg, nil
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}
