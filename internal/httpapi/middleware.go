package httpapi

import (
	"net/http"
	"time"

	"github.com/akarimov/ordercache/internal/observability"

	"github.com/go-chi/chi/v5/middleware"
)

// timingWriter injects the app Server-Timing entry just before the status
// line goes out; a header added after the body has started writing is
// silently dropped by net/http.
type timingWriter struct {
	http.ResponseWriter
	start time.Time
	wrote bool
}

func (t *timingWriter) WriteHeader(code int) {
	if !t.wrote {
		t.wrote = true
		observability.AppendServerTiming(t, "app", sinceMs(t.start), "")
	}
	t.ResponseWriter.WriteHeader(code)
}

func (t *timingWriter) Flush() {
	if f, ok := t.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// ServerTimingApp measures request processing time, writes app;dur=... to
// Server-Timing and reports the request to Metrics.ObserveHTTP. The header
// carries the time to first byte; the metric covers the full handler run.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			tw := &timingWriter{ResponseWriter: w, start: start}
			ww := middleware.NewWrapResponseWriter(tw, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			m.ObserveHTTP(r.Method, r.URL.Path, ww.Status(), sinceMs(start))
		})
	}
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
