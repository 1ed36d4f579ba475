package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/scoring"
	"github.com/programme-lv/leaderboard/tooltip"
)

type snapshotLoader interface {
	LoadAll(ctx context.Context) (scoring.Snapshot, error)
}

type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Leave key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Leave}, {k.Help, k.Quit}}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous participant"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next participant"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide details"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type snapshotMsg struct {
	snapshot scoring.Snapshot
}

type loadErrMsg struct {
	err error
}

type model struct {
	ctx     context.Context
	loader  snapshotLoader
	title   string
	state   state
	spinner spinner.Model
	help    help.Model

	snapshot scoring.Snapshot
	table    *board.Table
	// cursor is the hovered row, -1 when no row is hovered
	cursor  int
	tooltip *tooltip.Controller
	err     error
}

func newModel(ctx context.Context, l snapshotLoader, title string) model {
	return model{
		ctx:     ctx,
		loader:  l,
		title:   title,
		state:   stateLoading,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		cursor:  -1,
		tooltip: tooltip.NewController(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m model) load() tea.Msg {
	snap, err := m.loader.LoadAll(m.ctx)
	if err != nil {
		return loadErrMsg{err: err}
	}
	return snapshotMsg{snapshot: snap}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		table, err := board.Render(msg.snapshot)
		if err != nil {
			m.state, m.err = stateFailed, err
			return m, nil
		}
		m.state, m.snapshot, m.table = stateReady, msg.snapshot, table
		return m, nil
	case loadErrMsg:
		m.state, m.err = stateFailed, msg.err
		return m, nil
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case m.state != stateReady:
			// navigation needs a table
		case key.Matches(msg, keys.Up):
			m.hover(max(m.cursor-1, 0))
		case key.Matches(msg, keys.Down):
			m.hover(min(m.cursor+1, len(m.table.Rows)-1))
		case key.Matches(msg, keys.Leave):
			m.leave()
		}
	}
	return m, nil
}

// hover moves the cursor onto row i. Leaving the previous row hides its
// panel, entering the new one shows the participant's details.
func (m *model) hover(i int) {
	if i < 0 || i >= len(m.table.Rows) || i == m.cursor {
		return
	}
	m.leave()
	m.cursor = i
	m.tooltip.Show(m.table.Rows[i].Participant, nameAnchor(m.table, i))
}

func (m *model) leave() {
	m.tooltip.Hide()
	m.cursor = -1
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(m.spinner.View() + " Loading...")
	case stateFailed:
		b.WriteString(errorStyle.Render(board.ErrorMessage))
	case stateReady:
		var panel *tooltip.Panel
		if p, ok := m.tooltip.Current(); ok {
			panel = &p
		}
		b.WriteString(renderTable(m.table, m.cursor, panel))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.help.View(keys)))
	b.WriteString("\n")
	return b.String()
}
