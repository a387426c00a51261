package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var logCloser = func() error { return nil }

// setupLog sends logs to stderr until flags are parsed.
func setupLog() (func() error, error) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)
	return func() error { return logCloser() }, nil
}

// configureLogging applies the log level and optional log file from flags
// and config.
func configureLogging(*cobra.Command) error {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("log.level"), err)
	}
	log.SetLevel(level)

	path := viper.GetString("log.file")
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = f.Close

	var out io.Writer = f
	if term.IsTerminal(int(os.Stderr.Fd())) {
		out = io.MultiWriter(os.Stderr, f)
	}
	log.SetOutput(out)
	log.SetReportTimestamp(true)
	return nil
}
