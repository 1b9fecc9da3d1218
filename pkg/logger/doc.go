// Package logger builds slog loggers with consistent output across services.
//
// Production deployments use JSON output for log aggregation; development
// uses text output. Attr helpers keep field names uniform so logs from the
// user and booking services can be correlated.
package logger
