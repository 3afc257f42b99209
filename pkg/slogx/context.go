package slogx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/krishx06/gitinsights-pro/pkg/idx"
)

type ctxKey struct{}

// WithContext stashes logger into ctx for handlers further down the chain.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request-scoped logger, or slog.Default when the
// context never passed through the HTTP middleware.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// RequestID returns the inbound X-Request-ID, minting a fresh ULID when the
// caller did not supply one, so every log line for a request shares a
// correlation key.
func RequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return idx.New().String()
}
