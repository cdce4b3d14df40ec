// Package config loads CLI defaults from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvOutput   = "GRANTBOOK_OUTPUT"
	EnvLogLevel = "GRANTBOOK_LOG_LEVEL"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	OutputPath string
	LogLevel   logrus.Level
}

// Load reads the given .env files (default ".env"), then the process environment.
// Missing files are ignored; variables already set in the environment win.
func Load(defaultOutput string, files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		OutputPath: defaultOutput,
		LogLevel:   logrus.InfoLevel,
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
