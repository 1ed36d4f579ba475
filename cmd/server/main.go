package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/boardhttp"
	"github.com/programme-lv/leaderboard/conf"
	"github.com/programme-lv/leaderboard/loader"
	"github.com/programme-lv/leaderboard/logger"
)

var buildVersion = "dev"

func main() {
	configPath := flag.String("config", "", "path to a toml config file")
	flag.Parse()

	cfg, err := conf.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srcOpts := loader.SourceOptions{
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		AWSRegion:  cfg.AWSRegion,
	}
	participants, err := loader.NewSource(ctx, cfg.ParticipantsURL, srcOpts)
	if err != nil {
		slog.Error("invalid participants source", "uri", cfg.ParticipantsURL, "error", err)
		os.Exit(1)
	}
	attempts, err := loader.NewSource(ctx, cfg.AttemptsURL, srcOpts)
	if err != nil {
		slog.Error("invalid attempts source", "uri", cfg.AttemptsURL, "error", err)
		os.Exit(1)
	}

	boardHandler := boardhttp.NewBoardHttpHandler(loader.New(participants, attempts), boardhttp.Options{
		CacheTTL:       cfg.CacheTTL,
		Page:           board.PageOptions{Title: cfg.Title},
		AllowedOrigins: cfg.AllowedOrigins,
	})
	httpServer := boardhttp.NewHttpServer(boardHandler, boardhttp.ServerOptions{
		Version: buildVersion,
		Env:     cfg.Env,
		Level:   level,
	})

	if err := httpServer.Start(ctx, cfg.ListenAddr); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
