package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type responseRecorder struct {
	status int
	bytes  int64
	writer http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header {
	return r.writer.Header()
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.writer.WriteHeader(status)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.writer.Write(p)
	r.bytes += int64(n)
	return n, err
}

func (r *responseRecorder) Flush() {
	if f, ok := r.writer.(http.Flusher); ok {
		f.Flush()
	}
}

// withRequestLogging logs one line per request and stores the logger in the
// request context for zerolog.Ctx.
func withRequestLogging(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLogger := logger.With().Str("remote", clientIP(r)).Logger()
		r = r.WithContext(reqLogger.WithContext(r.Context()))

		rec := &responseRecorder{writer: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path = path + "?" + r.URL.RawQuery
		}

		event := reqLogger.Info()
		if status >= http.StatusInternalServerError {
			event = reqLogger.Error()
		}
		event.
			Str("method", r.Method).
			Str("path", path).
			Int("status", status).
			Int64("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("http request")
		reqLogger.Debug().Str("ua", r.UserAgent()).Msg("http request details")
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	return r.RemoteAddr
}
