package logger

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync/atomic"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger attaches a per-request logger carrying a traceparent to the
// request context and logs the start and end of every request.
func RequestLogger(baseLogger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceparent := r.Header.Get("traceparent")
			if traceparent == "" {
				traceparent = generateTraceparent()
			}
			reqLogger := baseLogger.With("traceparent", traceparent)

			reqLogger.Info("request started", "method", r.Method, "path", r.URL.Path)
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := NewContext(r.Context(), reqLogger)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.Info("request completed", "status", rec.status, "duration", time.Since(start))
		})
	}
}

var requests atomic.Int64

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// every hundredth request is flagged as sampled
func generateTraceFlags() string {
	if requests.Add(1)%100 == 1 {
		return "01"
	}

	return "00"
}

func generateTraceparent() string {
	return "00-" + randomHex(16) + "-" + randomHex(8) + "-" + generateTraceFlags()
}
