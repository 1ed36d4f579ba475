package boardhttp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

type endpointStats struct {
	count     int
	totalTime time.Duration
}

// statsLogger periodically logs request counts and average latency per
// route pattern.
type statsLogger struct {
	logger        *slog.Logger
	stats         map[string]*endpointStats
	mu            sync.Mutex
	flushInterval time.Duration
}

func newStatsLogger(logger *slog.Logger, flushInterval time.Duration) *statsLogger {
	return &statsLogger{
		logger:        logger,
		stats:         make(map[string]*endpointStats),
		flushInterval: flushInterval,
	}
}

func (sl *statsLogger) run(ctx context.Context) {
	ticker := time.NewTicker(sl.flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			sl.flush()
			return
		case <-ticker.C:
			sl.flush()
		}
	}
}

func (sl *statsLogger) flush() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	for endpoint, stats := range sl.stats {
		if stats.count == 0 {
			continue
		}
		avgTimeMs := float64(stats.totalTime.Microseconds()) / float64(stats.count) / 1000.0
		sl.logger.Info("endpoint stats",
			"endpoint", endpoint,
			"count", stats.count,
			"avg_time_ms", fmt.Sprintf("%.2f", avgTimeMs),
			"period", sl.flushInterval,
		)
		stats.count = 0
		stats.totalTime = 0
	}
}

func (sl *statsLogger) record(endpoint string, d time.Duration) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if _, exists := sl.stats[endpoint]; !exists {
		sl.stats[endpoint] = &endpointStats{}
	}
	sl.stats[endpoint].count++
	sl.stats[endpoint].totalTime += d
}

// middleware groups requests by chi route pattern so that participant ids do
// not create one entry each.
func (sl *statsLogger) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		sl.record(fmt.Sprintf("%s %s", r.Method, pattern), time.Since(start))
	})
}
