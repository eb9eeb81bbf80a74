package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/display"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/stats"
	"github.com/julianstephens/streak/internal/utils"
)

type ViewCmd struct {
	File  string `short:"f" help:"Streak file to view."`
	Name  string `short:"n" help:"Name of the streak (fuzzy matched)."`
	AsOf  string `help:"Compute stats as of this date instead of today (YYYY-MM-DD)."`
	NoCal bool   `help:"Skip the calendar."`
}

func (c *ViewCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}

	asOf := ctx.Now()
	if c.AsOf != "" {
		t, err := time.Parse(constants.DateFormat, c.AsOf)
		if err != nil {
			return errors.NewValidationError("as-of", "invalid date %q", c.AsOf)
		}
		asOf = utils.TruncateTo(t, st.Meta.Tick)
	}

	s, err := stats.Compute(st.Meta, st.Entries, asOf)
	if err != nil {
		return err
	}

	fmt.Print(display.Info(st))
	fmt.Println()
	fmt.Println(display.StatsTable(s))
	if !c.NoCal {
		fmt.Println()
		fmt.Print(display.Calendar(st, asOf))
	}
	return nil
}
