package boardhttp_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/programme-lv/leaderboard/boardhttp"
	"github.com/programme-lv/leaderboard/loader"
	"github.com/programme-lv/leaderboard/scoring"
	"github.com/shopspring/decimal"
)

type fakeLoader struct {
	snapshot scoring.Snapshot
	err      error
	calls    atomic.Int32
	gate     chan struct{} // when set, LoadAll waits for it to close
}

func (l *fakeLoader) LoadAll(ctx context.Context) (scoring.Snapshot, error) {
	l.calls.Add(1)
	if l.gate != nil {
		<-l.gate
	}
	if l.err != nil {
		return scoring.Snapshot{}, l.err
	}
	return l.snapshot, nil
}

func attempt(id int, v int64) scoring.Attempt {
	return scoring.Attempt{ID: id, Result: decimal.NewNullDecimal(decimal.NewFromInt(v))}
}

func exampleSnapshot() scoring.Snapshot {
	return scoring.NewSnapshot(
		[]scoring.Participant{
			{ID: 1, Name: "A", City: "X", Car: "Y"},
			{ID: 2, Name: "B", City: "X2", Car: "Y2"},
		},
		[]scoring.Attempt{attempt(1, 10), attempt(2, 5), attempt(1, 20), attempt(2, 30)},
	)
}

func newSnapshot(s scoring.Snapshot, attempts []scoring.Attempt) scoring.Snapshot {
	return scoring.NewSnapshot(s.Participants(), attempts)
}

func serverError() error {
	return &loader.LoadError{
		Resource:   loader.ResourceAttempts,
		Kind:       loader.KindStatus,
		StatusCode: http.StatusInternalServerError,
		Err:        errors.New("500 Internal Server Error"),
	}
}

func setupBoardHttpHandler(t *testing.T, l boardhttp.SnapshotLoader) http.Handler {
	t.Helper()
	h := boardhttp.NewBoardHttpHandler(l, boardhttp.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
