package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/utils"
)

type TickCmd struct {
	File     string  `short:"f" help:"Streak file to tick."`
	Name     string  `short:"n" help:"Name of the streak (fuzzy matched)."`
	Date     string  `help:"Date to tick (default: today)." default:""`
	Quantity float64 `help:"Quantity for this tick." default:"-1"`
	Comment  string  `help:"Comment for this tick."`
}

func (c *TickCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Streak: %s\n", st.Meta.Name)

	entry, err := parseEntryDate(ctx, c.Date, st.Meta.Tick)
	if err != nil {
		return err
	}
	if c.Quantity >= 0 {
		q := c.Quantity
		entry.Quantity = &q
	}
	entry.Comment = c.Comment

	// One tick per unit: a second tick in the same day/week/... is a no-op
	unit := utils.TruncateTo(entry.Date, st.Meta.Tick)
	for _, e := range st.Entries {
		if utils.TruncateTo(e.Date, st.Meta.Tick).Equal(unit) {
			fmt.Printf("Already ticked for this %s unit (%s)\n", st.Meta.Tick, e.DateString())
			return nil
		}
	}

	if err := ctx.Store.AppendTick(st, entry); err != nil {
		if errors.IsValidation(err) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Printf("Added tick: %s\n", entry.DateString())
	return nil
}
