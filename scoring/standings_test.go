package scoring_test

import (
	"testing"

	"github.com/programme-lv/leaderboard/scoring"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExample(t *testing.T) {
	st := scoring.Compute(exampleSnapshot(t))

	require.Equal(t, 2, st.AttemptCount)
	require.Len(t, st.Rows, 2)
	require.Len(t, st.ColumnBests, 2)

	a, b := st.Rows[0], st.Rows[1]
	assert.Equal(t, "A", a.Participant.Name)
	assert.Equal(t, "10", a.Results[0].Decimal.String())
	assert.Equal(t, "20", a.Results[1].Decimal.String())
	assert.Equal(t, "30", a.Total.String())
	assert.Equal(t, "35", b.Total.String())

	assert.True(t, st.ColumnBests[0].IsBest(a.Results[0]))
	assert.False(t, st.ColumnBests[0].IsBest(b.Results[0]))
	assert.True(t, st.ColumnBests[1].IsBest(b.Results[1]))
	assert.False(t, st.ColumnBests[1].IsBest(a.Results[1]))
	assert.True(t, st.BestTotal.IsBest(decimal.NewNullDecimal(b.Total)))
	assert.False(t, st.BestTotal.IsBest(decimal.NewNullDecimal(a.Total)))
}

func TestComputeTiesAreAllBest(t *testing.T) {
	participants := []scoring.Participant{{ID: 1}, {ID: 2}, {ID: 3}}
	attempts := []scoring.Attempt{attempt(1, 9), attempt(2, 9), attempt(3, 2)}

	st := scoring.Compute(scoring.NewSnapshot(participants, attempts))

	best := 0
	for _, row := range st.Rows {
		if st.ColumnBests[0].IsBest(row.Results[0]) {
			best++
		}
	}
	assert.Equal(t, 2, best)
}

func TestComputePadsShortParticipants(t *testing.T) {
	participants := []scoring.Participant{{ID: 1}, {ID: 2}}
	attempts := []scoring.Attempt{attempt(1, 1), attempt(1, 2), attempt(2, 8)}

	st := scoring.Compute(scoring.NewSnapshot(participants, attempts))

	require.Len(t, st.Rows[1].Results, 2)
	assert.True(t, st.Rows[1].Results[0].Valid)
	assert.False(t, st.Rows[1].Results[1].Valid)
	assert.False(t, st.ColumnBests[1].IsBest(st.Rows[1].Results[1]))
}

func TestSnapshotIsNotAliased(t *testing.T) {
	participants := []scoring.Participant{{ID: 1, Name: "A"}}
	s := scoring.NewSnapshot(participants, nil)
	participants[0].Name = "changed"

	got := s.Participants()
	assert.Equal(t, "A", got[0].Name)
	got[0].Name = "again"

	p, ok := s.Participant(1)
	require.True(t, ok)
	assert.Equal(t, "A", p.Name)

	_, ok = s.Participant(2)
	assert.False(t, ok)
}
