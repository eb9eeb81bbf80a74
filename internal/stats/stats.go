// Package stats computes derived streak statistics. Everything here is a
// pure function of (metadata, entries, reference date); no I/O, no caching.
package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/utils"
)

// Stats holds the derived numbers for one streak. Units are tick units at
// the metadata's tick granularity (days for Daily, weeks for Weekly, ...).
type Stats struct {
	TotalUnits    int
	TickedUnits   int
	UntickedUnits int
	CurrentStreak int
	LongestStreak int
	TickAverage   float64

	// TickedToday reports whether the reference date's own unit has an
	// entry. An unticked reference unit neither extends nor breaks
	// CurrentStreak; it is surfaced here instead.
	TickedToday bool
}

// Compute derives the statistics for the given entries as of asOf.
// Entries may arrive in file order; they are sorted on a copy. A reference
// date earlier than the latest entry is rejected, as are exact-duplicate
// timestamps that slipped past the parser.
func Compute(meta models.Metadata, entries []models.Entry, asOf time.Time) (Stats, error) {
	if len(entries) == 0 {
		return Stats{}, nil
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	seen := map[time.Time]struct{}{}
	for _, e := range sorted {
		key := e.Date.UTC()
		if _, dup := seen[key]; dup {
			return Stats{}, errors.NewValidationError("entries",
				"duplicate entry for %s", e.DateString())
		}
		seen[key] = struct{}{}
	}

	g := meta.Tick
	firstUnit := utils.TruncateTo(sorted[0].Date, g)
	lastUnit := utils.TruncateTo(sorted[len(sorted)-1].Date, g)
	asOfUnit := utils.TruncateTo(asOf, g)
	if asOfUnit.Before(lastUnit) {
		return Stats{}, errors.NewValidationError("asOf",
			"reference date %s precedes latest entry %s",
			asOf.Format("2006-01-02"), sorted[len(sorted)-1].DateString())
	}

	ticked := map[time.Time]struct{}{}
	for _, e := range sorted {
		ticked[utils.TruncateTo(e.Date, g)] = struct{}{}
	}

	st := Stats{
		TotalUnits:  utils.UnitsBetween(firstUnit, asOfUnit, g) + 1,
		TickedUnits: len(ticked),
	}
	st.UntickedUnits = st.TotalUnits - st.TickedUnits

	// Walk every unit in the window; gaps are evidence of "not done" and
	// must be materialized to detect streak breaks.
	run := 0
	for u := firstUnit; !u.After(asOfUnit); u = utils.AddUnits(u, g, 1) {
		if _, ok := ticked[u]; ok {
			run++
			if run > st.LongestStreak {
				st.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	if _, ok := ticked[asOfUnit]; ok {
		st.TickedToday = true
		st.CurrentStreak = run
	} else {
		// Count back from the unit before asOf; an unticked reference
		// unit shows the streak as of the prior unit.
		for u := utils.AddUnits(asOfUnit, g, -1); !u.Before(firstUnit); u = utils.AddUnits(u, g, -1) {
			if _, ok := ticked[u]; !ok {
				break
			}
			st.CurrentStreak++
		}
	}

	if st.TotalUnits > 0 {
		st.TickAverage = float64(st.TickedUnits) / float64(st.TotalUnits)
	}
	return st, nil
}
