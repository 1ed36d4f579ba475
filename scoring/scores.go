package scoring

import (
	"github.com/shopspring/decimal"
)

// FirstParticipantID is the participant whose attempts define the number of
// rounds. Every participant is assumed to have the same number of rounds.
const FirstParticipantID = 1

// CountAttempts returns the number of attempt rounds, i.e. the number of
// attempts made by participant 1.
func CountAttempts(attempts []Attempt) int {
	count := 0
	for _, a := range attempts {
		if a.ID == FirstParticipantID {
			count++
		}
	}
	return count
}

// AttemptsFor returns the results of a participant in source order. Index i
// holds the result of round i+1.
func AttemptsFor(participantID int, attempts []Attempt) []decimal.NullDecimal {
	res := make([]decimal.NullDecimal, 0)
	for _, a := range attempts {
		if a.ID == participantID {
			res = append(res, a.Result)
		}
	}
	return res
}

// TotalScore sums all results of a participant. Missing results count as zero.
func TotalScore(participantID int, attempts []Attempt) decimal.Decimal {
	total := decimal.Zero
	for _, r := range AttemptsFor(participantID, attempts) {
		if r.Valid {
			total = total.Add(r.Decimal)
		}
	}
	return total
}

// BestPerColumn returns the highest result in a 1-based attempt column.
// The second return value is false when no participant has a result there.
func BestPerColumn(column int, participants []Participant, attempts []Attempt) (decimal.Decimal, bool) {
	if column < 1 {
		return decimal.Decimal{}, false
	}
	var best decimal.Decimal
	found := false
	for _, p := range participants {
		results := AttemptsFor(p.ID, attempts)
		if column > len(results) || !results[column-1].Valid {
			continue
		}
		v := results[column-1].Decimal
		if !found || v.GreaterThan(best) {
			best = v
			found = true
		}
	}
	return best, found
}

// BestTotal returns the highest total over all participants.
func BestTotal(participants []Participant, attempts []Attempt) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, p := range participants {
		total := TotalScore(p.ID, attempts)
		if !found || total.GreaterThan(best) {
			best = total
			found = true
		}
	}
	return best, found
}
