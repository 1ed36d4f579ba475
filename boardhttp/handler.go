package boardhttp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/patrickmn/go-cache"
	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/logger"
	"github.com/programme-lv/leaderboard/scoring"
	"golang.org/x/sync/singleflight"
)

type SnapshotLoader interface {
	LoadAll(ctx context.Context) (scoring.Snapshot, error)
}

type Options struct {
	// CacheTTL is how long a loaded snapshot is reused, zero means forever.
	CacheTTL       time.Duration
	Page           board.PageOptions
	AllowedOrigins []string
	Logger         *slog.Logger
}

type BoardHttpHandler struct {
	loader  SnapshotLoader
	cache   *cache.Cache
	sfGroup singleflight.Group
	opts    Options
	logger  *slog.Logger
}

const snapshotCacheKey = "snapshot"

func NewBoardHttpHandler(loader SnapshotLoader, opts Options) *BoardHttpHandler {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if opts.CacheTTL > 0 {
		expiration = opts.CacheTTL
		cleanup = 2 * opts.CacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	return &BoardHttpHandler{
		loader: loader,
		cache:  cache.New(expiration, cleanup),
		opts:   opts,
		logger: opts.Logger,
	}
}

func (h *BoardHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetPage)
	r.Get("/healthz", h.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         3000,
		}))
		r.Get("/standings", h.GetStandings)
		r.Get("/participants/{participantId}/tooltip", h.GetTooltip)
	})
}

// snapshot returns the cached snapshot or loads it. Concurrent loads are
// collapsed into one; failures are not cached.
func (h *BoardHttpHandler) snapshot(ctx context.Context) (scoring.Snapshot, error) {
	if cached, found := h.cache.Get(snapshotCacheKey); found {
		if snap, ok := cached.(scoring.Snapshot); ok {
			return snap, nil
		}
	}

	// the load is shared, so it must not die with the first caller's request
	ctx = logger.WithLogger(context.WithoutCancel(ctx), h.logger)

	result, err, _ := h.sfGroup.Do(snapshotCacheKey, func() (interface{}, error) {
		if cached, found := h.cache.Get(snapshotCacheKey); found {
			if snap, ok := cached.(scoring.Snapshot); ok {
				return snap, nil
			}
		}

		snap, err := h.loader.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		h.cache.Set(snapshotCacheKey, snap, cache.DefaultExpiration)
		h.logger.Info("loaded snapshot",
			"participants", len(snap.Participants()),
			"attempts", len(snap.Attempts()))
		return snap, nil
	})
	if err != nil {
		return scoring.Snapshot{}, err
	}

	snap, _ := result.(scoring.Snapshot)
	return snap, nil
}

// requestLogger prefers the request scoped logger installed by httplog.
func (h *BoardHttpHandler) requestLogger(r *http.Request) *slog.Logger {
	if l := httplog.LogEntry(r.Context()); l != nil {
		return l
	}
	return h.logger
}
