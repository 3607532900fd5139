package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
	"github.com/HaiderNakara/doc-extract-web/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docextract-site init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the command logger; --verbose switches to development output.
func newLogger() *zap.Logger {
	return logging.Must(verbose)
}
