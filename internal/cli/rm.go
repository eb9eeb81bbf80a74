package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type RmCmd struct {
	File  string `short:"f" help:"Streak file to delete."`
	Name  string `short:"n" help:"Name of the streak (fuzzy matched)."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *RmCmd) Run(ctx *Context) error {
	st, err := resolveStreak(ctx, c.File, c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete streak %q and its file?", st.Meta.Name)).
				Description("This permanently removes " + st.Path).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.Remove(st); err != nil {
		return err
	}
	fmt.Printf("Deleted streak %q\n", st.Meta.Name)
	return nil
}
