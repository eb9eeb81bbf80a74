// Package display renders streaks for the terminal: info lines, stat
// tables and the per-month tick calendar.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/stats"
	"github.com/julianstephens/streak/internal/utils"
)

var (
	tickedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	missedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1"))
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")).Bold(true)
	futureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Info renders the streak name and tick granularity header lines
func Info(st *models.Streak) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name [%s]\n", st.Meta.Name)
	fmt.Fprintf(&b, "Tick [%s]\n", st.Meta.Tick)
	if st.Meta.Period != "" {
		if st.Meta.Frequency > 0 {
			fmt.Fprintf(&b, "Goal [%d per %s]\n", st.Meta.Frequency, st.Meta.Period)
		} else {
			fmt.Fprintf(&b, "Period [%s]\n", st.Meta.Period)
		}
	}
	return b.String()
}

// StatsTable renders the derived statistics as a two-column table
func StatsTable(s stats.Stats) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Streak Stats")
	tbl.AppendHeader(table.Row{"Stat", "Value"})
	tbl.AppendRows([]table.Row{
		{"Total Units", s.TotalUnits},
		{"Ticked Units", s.TickedUnits},
		{"Unticked Units", s.UntickedUnits},
		{"Current Streak", s.CurrentStreak},
		{"Longest Streak", s.LongestStreak},
		{"Tick Average", fmt.Sprintf("%.0f%%", s.TickAverage*100)},
		{"Ticked Today", todayGlyph(s.TickedToday)},
	})
	return tbl.Render()
}

// ListRow is one line of the streak list table
type ListRow struct {
	TickedToday   bool
	Name          string
	Tick          models.Granularity
	CurrentStreak int
	LongestStreak int
	TickAverage   float64
}

// ListTable renders the streak overview table
func ListTable(rows []ListRow) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Streaks")
	tbl.AppendHeader(table.Row{"Today", "Name", "Tick", "Longest Streak", "Current Streak", "Tick Average"})
	for _, r := range rows {
		tbl.AppendRow(table.Row{
			todayGlyph(r.TickedToday),
			r.Name,
			r.Tick,
			r.LongestStreak,
			r.CurrentStreak,
			fmt.Sprintf("%.0f%%", r.TickAverage*100),
		})
	}
	return tbl.Render()
}

func todayGlyph(ticked bool) string {
	if ticked {
		return "✓"
	}
	return "✖"
}

// Calendar renders one month grid per month of the current year up to now,
// marking ticked, missed, today and future days.
func Calendar(st *models.Streak, now time.Time) string {
	ticked := map[string]struct{}{}
	for _, e := range st.Entries {
		day := utils.TruncateTo(e.Date, models.GranularityDaily)
		ticked[day.Format("2006-01-02")] = struct{}{}
	}

	var b strings.Builder
	for month := time.January; month <= now.Month(); month++ {
		b.WriteString(renderMonth(now.Year(), month, now, ticked))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderMonth(year int, month time.Month, now time.Time, ticked map[string]struct{}) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("%s %d", month, year)
	tbl.AppendHeader(table.Row{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"})

	week := make([]interface{}, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, "")
	}
	for day := 1; day <= last.Day(); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		_, isTicked := ticked[d.Format("2006-01-02")]
		week = append(week, dayCell(day, d, today, isTicked))
		if len(week) == 7 {
			tbl.AppendRow(week)
			week = make([]interface{}, 0, 7)
		}
	}
	if len(week) > 0 {
		tbl.AppendRow(week)
	}
	return tbl.Render()
}

func dayCell(day int, d, today time.Time, isTicked bool) string {
	label := fmt.Sprintf("%2d", day)
	switch {
	case d.After(today):
		return futureStyle.Render(label + "  ")
	case d.Equal(today):
		if isTicked {
			return todayStyle.Render(label + " ✓")
		}
		return todayStyle.Render(label + "  ")
	case isTicked:
		return tickedStyle.Render(label + " ✓")
	default:
		return missedStyle.Render(label + " ✖")
	}
}
