package scoring

import (
	"github.com/shopspring/decimal"
)

type Participant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Car  string `json:"car"`
}

// Attempt is one scored round. ID refers to the participant, not the attempt;
// the round is implied by the position among attempts with the same ID.
type Attempt struct {
	ID     int                 `json:"id"`
	Result decimal.NullDecimal `json:"result"`
}

// Snapshot is the loaded data set. It is built once and never mutated,
// accessors hand out copies.
type Snapshot struct {
	participants []Participant
	attempts     []Attempt
}

func NewSnapshot(participants []Participant, attempts []Attempt) Snapshot {
	p := make([]Participant, len(participants))
	copy(p, participants)
	a := make([]Attempt, len(attempts))
	copy(a, attempts)
	return Snapshot{participants: p, attempts: a}
}

func (s Snapshot) Participants() []Participant {
	p := make([]Participant, len(s.participants))
	copy(p, s.participants)
	return p
}

func (s Snapshot) Attempts() []Attempt {
	a := make([]Attempt, len(s.attempts))
	copy(a, s.attempts)
	return a
}

// Participant looks a participant up by id.
func (s Snapshot) Participant(id int) (Participant, bool) {
	for _, p := range s.participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

func (s Snapshot) AttemptCount() int {
	return CountAttempts(s.attempts)
}
