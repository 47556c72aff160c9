package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger returns a slog logger backed by a charmbracelet/log handler.
// Unknown levels fall back to warn.
func newLogger(logLevel string, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}

	reportTimestamp := false
	lvl, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		lvl = log.WarnLevel
	}
	if lvl == log.DebugLevel {
		reportTimestamp = true
	}

	return slog.New(log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		Level:           lvl,
		Prefix:          "fsmx",
	}))
}
