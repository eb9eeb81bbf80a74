package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/display"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/stats"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	streaks, err := ctx.Store.List()
	if err != nil {
		return err
	}
	if len(streaks) == 0 {
		fmt.Println("No streaks found.")
		return nil
	}

	now := ctx.Now()
	rows := make([]display.ListRow, 0, len(streaks))
	for _, st := range streaks {
		s, err := stats.Compute(st.Meta, st.Entries, now)
		if err != nil {
			logger.Warn("Skipping streak with uncomputable stats", "streak", st.Meta.Name, "error", err)
			continue
		}
		rows = append(rows, display.ListRow{
			TickedToday:   s.TickedToday,
			Name:          st.Meta.Name,
			Tick:          st.Meta.Tick,
			CurrentStreak: s.CurrentStreak,
			LongestStreak: s.LongestStreak,
			TickAverage:   s.TickAverage,
		})
	}

	fmt.Println(display.ListTable(rows))
	return nil
}
