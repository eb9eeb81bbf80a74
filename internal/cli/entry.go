package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/store"
)

type UntickCmd struct {
	File string `short:"f" help:"Streak file to modify."`
	Name string `short:"n" help:"Name of the streak (fuzzy matched)."`
	Date string `arg:"" help:"Date of the entry to remove (YYYY-MM-DD or full timestamp)."`
}

func (c *UntickCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}
	entry, err := parseEntryDate(ctx, c.Date, st.Meta.Tick)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteEntry(st, entry.Date); err != nil {
		return err
	}
	fmt.Printf("Removed entry %s from %q\n", c.Date, st.Meta.Name)
	return nil
}

type EditCmd struct {
	File     string  `short:"f" help:"Streak file to modify."`
	Name     string  `short:"n" help:"Name of the streak (fuzzy matched)."`
	Date     string  `arg:"" help:"Date of the entry to edit."`
	Quantity float64 `help:"New quantity." default:"-1"`
	Comment  string  `help:"New comment. Pass an empty string to clear it." default:"\x00"`
}

func (c *EditCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}
	entry, err := parseEntryDate(ctx, c.Date, st.Meta.Tick)
	if err != nil {
		return err
	}

	var patch store.EntryPatch
	if c.Quantity >= 0 {
		q := c.Quantity
		patch.Quantity = &q
	}
	if c.Comment != "\x00" {
		comment := c.Comment
		patch.Comment = &comment
	}
	if patch.Quantity == nil && patch.Comment == nil {
		return fmt.Errorf("nothing to edit: pass --quantity or --comment")
	}

	if err := ctx.Store.EditEntry(st, entry.Date, patch); err != nil {
		return err
	}
	fmt.Printf("Updated entry %s in %q\n", c.Date, st.Meta.Name)
	return nil
}
