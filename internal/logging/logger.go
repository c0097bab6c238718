// Package logging defines the minimal structured-logging interface used
// across the client. Implementations can wrap slog or any other backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key/value pairs:
//
//	log.Info(ctx, "request sent", "method", "POST", "path", "/api/login")
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
