package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware is the HTTP counterpart of LoggingInterceptor.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		logger := Default()

		route := slog.String("route", r.Method+" "+r.URL.Path)
		logger.Debug(ctx, "start handling http request", route)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		attrs := []slog.Attr{
			route,
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		}

		if rec.status >= http.StatusInternalServerError {
			logger.Error(ctx, "finish with error", attrs...)
			return
		}

		logger.Info(ctx, "finish success", attrs...)
	})
}
