package boardhttp

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/programme-lv/leaderboard/httpjson"
	"github.com/programme-lv/leaderboard/tooltip"
)

// GetTooltip renders the details panel for the participant whose name cell
// is hovered. The anchor box comes from the query: top, left, width, height.
func (h *BoardHttpHandler) GetTooltip(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	rawId := chi.URLParam(r, "participantId")
	id, err := strconv.Atoi(rawId)
	if err != nil {
		httpjson.HandleError(logger, w, newErrInvalidParticipantId(rawId))
		return
	}

	anchor, err := parseAnchor(r)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	snap, err := h.snapshot(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, newErrDataUnavailable(err))
		return
	}

	participant, ok := snap.Participant(id)
	if !ok {
		httpjson.HandleError(logger, w, newErrParticipantNotFound(id))
		return
	}

	var buf bytes.Buffer
	if err := tooltip.WriteHTML(&buf, tooltip.NewPanel(participant, anchor)); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	writeHtml(w, http.StatusOK, buf.Bytes())
}

func parseAnchor(r *http.Request) (tooltip.Rect, error) {
	q := r.URL.Query()
	var rect tooltip.Rect
	fields := []struct {
		name string
		dst  *float64
	}{
		{"top", &rect.Top},
		{"left", &rect.Left},
		{"width", &rect.Width},
		{"height", &rect.Height},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return tooltip.Rect{}, newErrInvalidAnchor(f.name, raw)
		}
		*f.dst = v
	}
	if rect.Width < 0 || rect.Height < 0 {
		return tooltip.Rect{}, newErrInvalidAnchor("size", q.Get("width")+"x"+q.Get("height"))
	}
	return rect, nil
}
