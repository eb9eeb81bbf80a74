package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/models"
)

type NewCmd struct {
	Name      string `arg:"" help:"Name of the new streak."`
	Tick      string `help:"Tick granularity (Hourly, Daily, Weekly, Monthly, Yearly)." default:""`
	Period    string `help:"Optional period granularity the frequency is measured against."`
	Frequency int    `help:"Expected ticks per period."`
}

func (c *NewCmd) Run(ctx *Context) error {
	tick := ctx.Config.DefaultTick
	if c.Tick != "" {
		g, err := models.ParseGranularity(c.Tick)
		if err != nil {
			return err
		}
		tick = g
	}

	meta := models.Metadata{
		Name:      c.Name,
		Tick:      tick,
		Frequency: c.Frequency,
	}
	if c.Period != "" {
		g, err := models.ParseGranularity(c.Period)
		if err != nil {
			return err
		}
		meta.Period = g
	}

	st, err := ctx.Store.Create(meta)
	if err != nil {
		return err
	}

	fmt.Printf("Streak %q created at %s\n", c.Name, st.Path)
	return nil
}
