// Package cli is the thin command dispatcher: it parses arguments, builds
// the configured backend, runs one load-operate-save sequence and renders
// the result. All domain behavior lives in core, store and report.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"spendtrack/internal/config"
	"spendtrack/internal/log"
)

// SetupLogger initializes structured logging on stderr and sets the
// default logger.
func SetupLogger(level slog.Level) *log.Logger {
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Main wires configuration, logging and the app together and returns the
// process exit code.
func Main(args []string) int {
	LoadEnvFile()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	logger := SetupLogger(level)

	return NewApp(cfg, logger).Run(args)
}
