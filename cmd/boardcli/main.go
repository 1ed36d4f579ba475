package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/conf"
	"github.com/programme-lv/leaderboard/loader"
	"github.com/programme-lv/leaderboard/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a toml config file")
	participantsURI := flag.String("participants", "", "participants resource (url, s3://bucket/key or path)")
	attemptsURI := flag.String("attempts", "", "attempts resource (url, s3://bucket/key or path)")
	format := flag.String("format", "tui", "output format: tui, text or html")
	flag.Parse()

	// flags win over the environment, which wins over the config file
	if *participantsURI != "" {
		os.Setenv("PARTICIPANTS_URL", *participantsURI)
	}
	if *attemptsURI != "" {
		os.Setenv("ATTEMPTS_URL", *attemptsURI)
	}

	cfg, err := conf.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the ui, so logs only go out on failure
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: max(logger.ParseLevel(cfg.LogLevel), slog.LevelWarn),
	})))

	ctx := context.Background()
	l, err := newLoader(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "tui":
		p := tea.NewProgram(newModel(ctx, l, cfg.Title))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "text", "html":
		if err := printBoard(ctx, os.Stdout, l, *format, cfg.Title); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(2)
	}
}

func newLoader(ctx context.Context, cfg conf.Config) (*loader.Loader, error) {
	opts := loader.SourceOptions{
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		AWSRegion:  cfg.AWSRegion,
	}
	participants, err := loader.NewSource(ctx, cfg.ParticipantsURL, opts)
	if err != nil {
		return nil, fmt.Errorf("participants source: %w", err)
	}
	attempts, err := loader.NewSource(ctx, cfg.AttemptsURL, opts)
	if err != nil {
		return nil, fmt.Errorf("attempts source: %w", err)
	}
	return loader.New(participants, attempts), nil
}

// printBoard writes the board once to w. A load failure prints only the
// error banner, like the page does, and is still returned.
func printBoard(ctx context.Context, w io.Writer, l snapshotLoader, format string, title string) error {
	snap, err := l.LoadAll(ctx)
	if err != nil {
		slog.Warn("failed to load leaderboard data", "error", err)
		if format == "html" {
			if werr := board.WriteErrorPage(w, board.PageOptions{Title: title}); werr != nil {
				return werr
			}
			return err
		}
		fmt.Fprintln(w, errorStyle.Render(board.ErrorMessage))
		return err
	}

	table, err := board.Render(snap)
	if err != nil {
		return err
	}
	if format == "html" {
		return board.WritePage(w, table, board.PageOptions{Title: title})
	}
	_, err = fmt.Fprintln(w, renderTable(table, -1, nil))
	return err
}
