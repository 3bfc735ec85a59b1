// Package logger is a small factory over log/slog: JSON or text
// handlers, env-driven defaults, static attributes, and an Err attr
// helper for consistent error rendering.
package logger
