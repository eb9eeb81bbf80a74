package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/streak/internal/cli"
	"github.com/julianstephens/streak/internal/config"
	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Dir     string `help:"Directory to store streaks (overrides config)." type:"path"`
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	New    cli.NewCmd    `cmd:"" help:"Create a new streak."`
	List   cli.ListCmd   `cmd:"" help:"List all streaks." default:"1"`
	View   cli.ViewCmd   `cmd:"" help:"View a streak's stats and calendar."`
	Tick   cli.TickCmd   `cmd:"" aliases:"mark" help:"Record a tick (default: today)."`
	Untick cli.UntickCmd `cmd:"" help:"Remove a recorded tick."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit a recorded tick's quantity or comment."`
	Set    cli.SetCmd    `cmd:"" help:"Update a streak's metadata."`
	Rm     cli.RmCmd     `cmd:"" help:"Delete a streak and its file."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive streak browser."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track habit streaks in plain text files (streak.txt format)"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: config.DefaultConfigDir(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	cfg, err := config.Resolve(fileCfg, CLI.Dir)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:  store.NewStore(cfg.Dir),
		Config: cfg,
		Now:    time.Now,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
