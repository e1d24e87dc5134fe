// Package middleware provides interceptors for z/OSMF clients.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wmcgee3/zosmf/endpoint"
)

// Logging creates an interceptor that logs every call using slog.
// It logs the start and end of each call with its duration and status,
// tagging both records with a fresh request id.
func Logging(logger *slog.Logger) endpoint.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, call *endpoint.Call, next endpoint.RoundTrip) (*http.Response, error) {
		start := time.Now()
		log := logger.With(
			slog.String("request_id", uuid.NewString()),
			slog.String("endpoint", call.Endpoint),
		)

		log.InfoContext(ctx, "request started",
			slog.String("method", call.Request.Method),
			slog.String("url", call.Request.URL.Redacted()),
		)

		resp, err := next(ctx, call)
		duration := time.Since(start)

		if err != nil {
			log.ErrorContext(ctx, "request failed",
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
			return resp, err
		}

		level := slog.LevelInfo
		if resp.StatusCode >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "request completed",
			slog.Int("status", resp.StatusCode),
			slog.String("txid", resp.Header.Get(endpoint.HeaderTransactionID)),
			slog.Duration("duration", duration),
		)
		return resp, nil
	}
}
