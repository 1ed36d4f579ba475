package boardhttp

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/srvcerror"
)

// GetPage renders the leaderboard, or only the error banner when the data
// could not be loaded.
func (h *BoardHttpHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r.Context())
	if err != nil {
		h.writeErrorPage(w, r, newErrDataUnavailable(err))
		return
	}

	table, err := board.Render(snap)
	if err != nil {
		h.writeErrorPage(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := board.WritePage(&buf, table, h.opts.Page); err != nil {
		h.writeErrorPage(w, r, err)
		return
	}
	writeHtml(w, http.StatusOK, buf.Bytes())
}

// writeErrorPage shows the banner page for unavailable data and a bare
// status text for anything else.
func (h *BoardHttpHandler) writeErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	logger := h.requestLogger(r)

	status := http.StatusInternalServerError
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		status = srvcErr.HttpStatusCode()
	}

	if !srvcerror.HasCode(err, ErrCodeDataUnavailable) {
		logger.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	logger.Warn("failed to load leaderboard data", "cause", srvcErr.DebugInfo())
	var buf bytes.Buffer
	if err := board.WriteErrorPage(&buf, h.opts.Page); err != nil {
		logger.Error("failed to render error page", "error", err)
		http.Error(w, board.ErrorMessage, status)
		return
	}
	writeHtml(w, status, buf.Bytes())
}

func writeHtml(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *BoardHttpHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
