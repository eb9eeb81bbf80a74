// Package tui provides the interactive streak browser.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streak/internal/display"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/stats"
	"github.com/julianstephens/streak/internal/store"
	"github.com/julianstephens/streak/internal/utils"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for the streak browser
type Model struct {
	store *store.Store
	now   func() time.Time

	table    table.Model
	streaks  []*models.Streak
	detail   string
	showing  bool
	errMsg   string
	quitting bool
}

// New creates the browser model over the given store
func New(st *store.Store, now func() time.Time) Model {
	columns := []table.Column{
		{Title: "Today", Width: 5},
		{Title: "Name", Width: 24},
		{Title: "Tick", Width: 8},
		{Title: "Current", Width: 8},
		{Title: "Longest", Width: 8},
		{Title: "Average", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	t.SetStyles(s)

	m := Model{store: st, now: now, table: t}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) reload() {
	m.errMsg = ""
	streaks, err := m.store.List()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.streaks = streaks

	now := m.now()
	rows := make([]table.Row, 0, len(streaks))
	for _, st := range streaks {
		s, err := stats.Compute(st.Meta, st.Entries, now)
		if err != nil {
			rows = append(rows, table.Row{"?", st.Meta.Name, string(st.Meta.Tick), "-", "-", "-"})
			continue
		}
		glyph := "✖"
		if s.TickedToday {
			glyph = "✓"
		}
		rows = append(rows, table.Row{
			glyph,
			st.Meta.Name,
			string(st.Meta.Tick),
			fmt.Sprintf("%d", s.CurrentStreak),
			fmt.Sprintf("%d", s.LongestStreak),
			fmt.Sprintf("%.0f%%", s.TickAverage*100),
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) selected() *models.Streak {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.streaks) {
		return nil
	}
	return m.streaks[i]
}

func (m *Model) tickSelected() {
	st := m.selected()
	if st == nil {
		return
	}
	now := m.now()
	entry := models.Entry{Date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
	if st.Meta.Tick == models.GranularityHourly {
		entry.Date = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, time.UTC)
		entry.HasTime = true
	}

	unit := utils.TruncateTo(entry.Date, st.Meta.Tick)
	for _, e := range st.Entries {
		if utils.TruncateTo(e.Date, st.Meta.Tick).Equal(unit) {
			m.errMsg = fmt.Sprintf("%s is already ticked for this %s unit", st.Meta.Name, st.Meta.Tick)
			return
		}
	}
	if err := m.store.AppendTick(st, entry); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.reload()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.showing {
				m.showing = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if st := m.selected(); st != nil {
				s, err := stats.Compute(st.Meta, st.Entries, m.now())
				if err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.detail = display.Info(st) + "\n" + display.StatsTable(s)
				m.showing = true
			}
			return m, nil
		case "t":
			m.tickSelected()
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showing {
		return m.detail + "\n" + statusStyle.Render("esc: back  q: quit") + "\n"
	}

	view := titleStyle.Render("Streaks") + "\n"
	view += baseStyle.Render(m.table.View()) + "\n"
	if m.errMsg != "" {
		view += errorStyle.Render(m.errMsg) + "\n"
	}
	view += statusStyle.Render("t: tick  enter: stats  r: reload  q: quit") + "\n"
	return view
}

// Run starts the browser and blocks until it exits
func Run(st *store.Store, now func() time.Time) error {
	_, err := tea.NewProgram(New(st, now)).Run()
	return err
}
