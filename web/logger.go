package web

import (
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

var (
	statusOK          = color.New(color.FgGreen)
	statusRedirect    = color.New(color.FgCyan)
	statusClientError = color.New(color.FgYellow)
	statusServerError = color.New(color.FgRed)
)

// requestLogger logs one line per request with a status-colored code.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		log.Printf("%s %s %s %v", r.Method, r.URL.Path,
			statusColor(wrapped.status).Sprintf("%d", wrapped.status), time.Since(start))
	})
}

func statusColor(status int) *color.Color {
	switch {
	case status >= 500:
		return statusServerError
	case status >= 400:
		return statusClientError
	case status >= 300:
		return statusRedirect
	default:
		return statusOK
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
