// Package httpserver wraps net/http with graceful shutdown and env-driven
// timeout configuration shared by both services.
package httpserver
