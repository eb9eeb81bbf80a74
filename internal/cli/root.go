package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/streak/internal/config"
	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/store"
)

// Context carries the shared dependencies into every command
type Context struct {
	Store  *store.Store
	Config config.Config
	Now    func() time.Time
}

// resolveStreak loads a streak from -f/--file or fuzzy -n/--name.
// Exactly one of the two must be given.
func resolveStreak(ctx *Context, file, name string) (*models.Streak, error) {
	switch {
	case file != "" && name != "":
		return nil, fmt.Errorf("use either --file or --name, not both")
	case file != "":
		return ctx.Store.LoadFile(file)
	case name != "":
		return ctx.Store.Load(name)
	default:
		return nil, fmt.Errorf("either --file or --name is required")
	}
}

// parseEntryDate parses a --date argument: YYYY-MM-DD or a full
// date-time for sub-daily ticks. Empty means now.
func parseEntryDate(ctx *Context, s string, tick models.Granularity) (models.Entry, error) {
	if s == "" {
		now := ctx.Now()
		e := models.Entry{Date: now}
		if tick == models.GranularityHourly {
			e.Date = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, time.UTC)
			e.HasTime = true
		} else {
			e.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		}
		return e, nil
	}
	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		return models.Entry{Date: t}, nil
	}
	if t, err := time.Parse(constants.DateTimeFormat, s); err == nil {
		return models.Entry{Date: t, HasTime: true}, nil
	}
	return models.Entry{}, errors.NewValidationError("date",
		"invalid date %q (expected YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)", s)
}
