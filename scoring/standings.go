package scoring

import (
	"github.com/shopspring/decimal"
)

type Standing struct {
	Participant Participant
	// Results has exactly Standings.AttemptCount entries; rounds the
	// participant did not record are invalid.
	Results []decimal.NullDecimal
	Total   decimal.Decimal
}

type ColumnBest struct {
	Value decimal.Decimal
	Found bool
}

type Standings struct {
	AttemptCount int
	Rows         []Standing
	ColumnBests  []ColumnBest // index i is column i+1
	BestTotal    ColumnBest
}

// Compute derives every number shown on the board from a snapshot.
func Compute(s Snapshot) Standings {
	participants := s.participants
	attempts := s.attempts
	count := CountAttempts(attempts)

	out := Standings{
		AttemptCount: count,
		Rows:         make([]Standing, 0, len(participants)),
		ColumnBests:  make([]ColumnBest, count),
	}

	for _, p := range participants {
		results := AttemptsFor(p.ID, attempts)
		row := Standing{
			Participant: p,
			Results:     make([]decimal.NullDecimal, count),
			Total:       TotalScore(p.ID, attempts),
		}
		copy(row.Results, results)
		out.Rows = append(out.Rows, row)
	}

	for col := 1; col <= count; col++ {
		v, ok := BestPerColumn(col, participants, attempts)
		out.ColumnBests[col-1] = ColumnBest{Value: v, Found: ok}
	}

	v, ok := BestTotal(participants, attempts)
	out.BestTotal = ColumnBest{Value: v, Found: ok}

	return out
}

// IsBest reports whether a value equals the column maximum.
func (b ColumnBest) IsBest(v decimal.NullDecimal) bool {
	return b.Found && v.Valid && v.Decimal.Equal(b.Value)
}
