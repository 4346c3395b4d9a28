// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all service settings.
type Config struct {
	Port            string
	AllowedOrigins  []string
	StoreDir        string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	readTimeout, err := parseDuration("READ_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	writeTimeout, err := parseDuration("WRITE_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            envOrDefault("PORT", "8080"),
		AllowedOrigins:  parseList(envOrDefault("ORIGIN", "*")),
		StoreDir:        os.Getenv("STORE_DIR"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, errors.New("ORIGIN should contain at least one origin")
	}

	if cfg.StoreDir != "" {
		dir, err := filepath.Abs(cfg.StoreDir)
		if err != nil {
			return nil, fmt.Errorf("invalid STORE_DIR: %w", err)
		}
		cfg.StoreDir = dir
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
