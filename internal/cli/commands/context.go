// Package commands implements the sqlrefs subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlrefs/internal/cli/config"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// WithConfig stores cfg in ctx for retrieval by commands.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger stores log in ctx for retrieval by commands.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// ConfigFrom returns the config attached to the command's context, or
// the defaults when a command runs standalone (as in tests).
func ConfigFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// LoggerFrom returns the logger attached to the command's context, or a
// discarding logger when none was set.
func LoggerFrom(cmd *cobra.Command) *slog.Logger {
	if log, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// clamp enforces the advisory input bound at the CLI boundary. The
// extractor core accepts input of any length; oversized queries are
// truncated here with a warning so extraction still degrades to a
// partial result instead of failing.
func clamp(query string, maxLen int, log *slog.Logger) string {
	if maxLen > 0 && len(query) > maxLen {
		log.Warn("query exceeds advisory max length, truncating",
			"length", len(query), "max_length", maxLen)
		return query[:maxLen]
	}
	return query
}
