package boardhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/klauspost/compress/gzhttp"
)

type ServerOptions struct {
	Version string
	Env     string
	Level   slog.Level
}

type HttpServer struct {
	router  *chi.Mux
	handler http.Handler
	logger  *httplog.Logger
	stats   *statsLogger
}

func NewHttpServer(boardHandler *BoardHttpHandler, opts ServerOptions) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("leaderboard", httplog.Options{
		LogLevel:         opts.Level,
		JSON:             opts.Env != "dev",
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": opts.Version,
			"env":     opts.Env,
		},
	})

	stats := newStatsLogger(logger.Logger, time.Minute)

	router.Use(httplog.RequestLogger(logger))
	router.Use(stats.middleware)

	boardHandler.logger = logger.Logger
	boardHandler.RegisterRoutes(router)

	return &HttpServer{
		router:  router,
		handler: gzhttp.GzipHandler(router),
		logger:  logger,
		stats:   stats,
	}
}

func (s *HttpServer) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *HttpServer) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	statsCtx, stopStats := context.WithCancel(ctx)
	defer stopStats()
	go s.stats.run(statsCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
