package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/models"
)

type SetCmd struct {
	File      string `short:"f" help:"Streak file to modify."`
	Name      string `short:"n" help:"Name of the streak (fuzzy matched)."`
	NewName   string `help:"New display name."`
	Tick      string `help:"New tick granularity."`
	Period    string `help:"New period granularity. Pass 'none' to clear it."`
	Frequency int    `help:"New expected ticks per period. Pass 0 to clear it." default:"-1"`
}

func (c *SetCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}

	meta := st.Meta
	if c.NewName != "" {
		meta.Name = c.NewName
	}
	if c.Tick != "" {
		g, err := models.ParseGranularity(c.Tick)
		if err != nil {
			return err
		}
		meta.Tick = g
	}
	switch c.Period {
	case "":
	case "none":
		meta.Period = ""
	default:
		g, err := models.ParseGranularity(c.Period)
		if err != nil {
			return err
		}
		meta.Period = g
	}
	if c.Frequency >= 0 {
		meta.Frequency = c.Frequency
	}

	if err := ctx.Store.UpdateMetadata(st, meta); err != nil {
		return err
	}
	fmt.Printf("Updated metadata for %q\n", meta.Name)
	return nil
}
