package boardhttp

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/httpjson"
)

type Cell struct {
	Value *json.Number `json:"value"` // null for a missing result
	Best  bool         `json:"best"`
}

type Row struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Car      string `json:"car"`
	Attempts []Cell `json:"attempts"`
	Score    Cell   `json:"score"`
}

type Standings struct {
	AttemptCount int      `json:"attempt_count"`
	Headers      []string `json:"headers"`
	Rows         []Row    `json:"rows"`
}

func (h *BoardHttpHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	snap, err := h.snapshot(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, newErrDataUnavailable(err))
		return
	}

	table, err := board.Render(snap)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapStandings(table))
}

func mapStandings(t *board.Table) Standings {
	out := Standings{
		AttemptCount: t.AttemptCount,
		Headers:      t.Headers,
		Rows:         make([]Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		mapped := Row{
			ID:       row.Participant.ID,
			Name:     row.Participant.Name,
			City:     row.Participant.City,
			Car:      row.Participant.Car,
			Attempts: make([]Cell, 0, len(row.Attempts)),
			Score:    mapCell(row.Score),
		}
		for _, c := range row.Attempts {
			mapped.Attempts = append(mapped.Attempts, mapCell(c))
		}
		out.Rows = append(out.Rows, mapped)
	}
	return out
}

func mapCell(c board.Cell) Cell {
	cell := Cell{Best: c.Best}
	if c.Value.Valid {
		n := json.Number(c.Text())
		cell.Value = &n
	}
	return cell
}
