package cli

import (
	"github.com/julianstephens/streak/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	return tui.Run(ctx.Store, ctx.Now)
}
