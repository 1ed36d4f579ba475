package board

import (
	"errors"
	"fmt"

	"github.com/programme-lv/leaderboard/scoring"
	"github.com/shopspring/decimal"
)

// ErrPhaseOrder is returned when the renderer phases are called out of order.
var ErrPhaseOrder = errors.New("table phases must run as shell, fill, mark best")

type Cell struct {
	Column int // 1-based attempt column, 0 for the score cell
	Value  decimal.NullDecimal
	Best   bool
}

// Text is the cell content as shown to the user, empty for missing values.
func (c Cell) Text() string {
	if !c.Value.Valid {
		return ""
	}
	return c.Value.Decimal.String()
}

type Row struct {
	Participant scoring.Participant
	Attempts    []Cell
	Score       Cell
}

type Table struct {
	AttemptCount int
	Headers      []string // attempt column titles followed by the summary title
	Rows         []Row
}

const SummaryTitle = "Total"

func AttemptTitle(column int) string {
	return fmt.Sprintf("Attempt #%d", column)
}

type phase int

const (
	phaseNone phase = iota
	phaseShell
	phaseFilled
	phaseMarked
)

// Renderer turns a snapshot into a Table in three phases: BuildShell lays
// out empty cells, Fill writes the numbers, MarkBest flags the maxima.
type Renderer struct {
	snapshot  scoring.Snapshot
	standings scoring.Standings
	table     *Table
	phase     phase
}

func NewRenderer(s scoring.Snapshot) *Renderer {
	return &Renderer{snapshot: s}
}

func (r *Renderer) BuildShell() error {
	if r.phase != phaseNone {
		return ErrPhaseOrder
	}

	r.standings = scoring.Compute(r.snapshot)
	count := r.standings.AttemptCount

	t := &Table{
		AttemptCount: count,
		Headers:      make([]string, 0, count+1),
	}
	for col := 1; col <= count; col++ {
		t.Headers = append(t.Headers, AttemptTitle(col))
	}
	t.Headers = append(t.Headers, SummaryTitle)

	for _, p := range r.snapshot.Participants() {
		row := Row{
			Participant: p,
			Attempts:    make([]Cell, count),
		}
		for i := range row.Attempts {
			row.Attempts[i].Column = i + 1
		}
		t.Rows = append(t.Rows, row)
	}

	r.table = t
	r.phase = phaseShell
	return nil
}

func (r *Renderer) Fill() error {
	if r.phase != phaseShell {
		return ErrPhaseOrder
	}
	for i := range r.table.Rows {
		st := r.standings.Rows[i]
		row := &r.table.Rows[i]
		for j := range row.Attempts {
			row.Attempts[j].Value = st.Results[j]
		}
		row.Score.Value = decimal.NewNullDecimal(st.Total)
	}
	r.phase = phaseFilled
	return nil
}

// MarkBest flags every cell equal to its column maximum, and every score
// equal to the best total. Ties are all flagged. It can be repeated.
func (r *Renderer) MarkBest() error {
	if r.phase != phaseFilled && r.phase != phaseMarked {
		return ErrPhaseOrder
	}
	for i := range r.table.Rows {
		row := &r.table.Rows[i]
		for j := range row.Attempts {
			cell := &row.Attempts[j]
			cell.Best = r.standings.ColumnBests[j].IsBest(cell.Value)
		}
		row.Score.Best = r.standings.BestTotal.IsBest(row.Score.Value)
	}
	r.phase = phaseMarked
	return nil
}

// Table returns the table built so far, nil before BuildShell.
func (r *Renderer) Table() *Table {
	return r.table
}

// Render runs all phases.
func Render(s scoring.Snapshot) (*Table, error) {
	r := NewRenderer(s)
	if err := r.BuildShell(); err != nil {
		return nil, err
	}
	if err := r.Fill(); err != nil {
		return nil, err
	}
	if err := r.MarkBest(); err != nil {
		return nil, err
	}
	return r.Table(), nil
}
