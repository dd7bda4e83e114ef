package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// NewStructuredLogger logs one line per request. It logs from a defer so a
// handler that panics is still recorded, as a 500, before the recoverer
// further out answers it. Metrics scrapes drop to debug and 4xx answers are
// warnings.
func NewStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			completed := false

			defer func() {
				status := ww.Status()
				switch {
				case !completed:
					status = http.StatusInternalServerError
				case status == 0:
					status = http.StatusOK
				}
				attrs := []any{
					slog.Group("request",
						slog.String("id", middleware.GetReqID(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("remote_addr", r.RemoteAddr),
					),
					slog.Group("response",
						slog.Int("status", status),
						slog.Int("bytes", ww.BytesWritten()),
						slog.Duration("latency", time.Since(start)),
					),
				}
				if !completed {
					attrs = append(attrs, slog.Bool("panic", true))
				}

				switch {
				case status >= http.StatusInternalServerError:
					logger.Error("server error", attrs...)
				case status >= http.StatusBadRequest:
					logger.Warn("client error", attrs...)
				case r.URL.Path == "/metrics":
					logger.Debug("metrics scraped", attrs...)
				default:
					logger.Info("request completed", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
			completed = true
		})
	}
}
