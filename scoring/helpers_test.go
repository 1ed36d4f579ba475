package scoring_test

import (
	"testing"

	"github.com/programme-lv/leaderboard/scoring"
	"github.com/shopspring/decimal"
)

func res(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func attempt(id int, v int64) scoring.Attempt {
	return scoring.Attempt{ID: id, Result: res(v)}
}

// fixture from the product description: two participants, two rounds
func exampleSnapshot(t *testing.T) scoring.Snapshot {
	t.Helper()
	participants := []scoring.Participant{
		{ID: 1, Name: "A", City: "X", Car: "Y"},
		{ID: 2, Name: "B", City: "X2", Car: "Y2"},
	}
	attempts := []scoring.Attempt{
		attempt(1, 10),
		attempt(2, 5),
		attempt(1, 20),
		attempt(2, 30),
	}
	return scoring.NewSnapshot(participants, attempts)
}
