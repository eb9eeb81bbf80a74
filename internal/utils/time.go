package utils

import (
	"time"

	"github.com/julianstephens/streak/internal/models"
)

// TruncateTo truncates t to the start of its tick unit. Weeks start on
// Monday (ISO-8601). The result is normalized to UTC so truncated times
// compare with == regardless of the source location.
func TruncateTo(t time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityHourly:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	case models.GranularityWeekly:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return d.AddDate(0, 0, -mondayOffset(d.Weekday()))
	case models.GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case models.GranularityYearly:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// AddUnits returns the start of the unit n units after (or before, for
// negative n) the unit containing t.
func AddUnits(t time.Time, g models.Granularity, n int) time.Time {
	u := TruncateTo(t, g)
	switch g {
	case models.GranularityHourly:
		return u.Add(time.Duration(n) * time.Hour)
	case models.GranularityWeekly:
		return u.AddDate(0, 0, 7*n)
	case models.GranularityMonthly:
		return u.AddDate(0, n, 0)
	case models.GranularityYearly:
		return u.AddDate(n, 0, 0)
	default:
		return u.AddDate(0, 0, n)
	}
}

// UnitsBetween returns the number of whole tick units from the unit
// containing a to the unit containing b. Zero when both fall in the same
// unit, negative when b precedes a.
func UnitsBetween(a, b time.Time, g models.Granularity) int {
	ua, ub := TruncateTo(a, g), TruncateTo(b, g)
	switch g {
	case models.GranularityHourly:
		return int(ub.Sub(ua) / time.Hour)
	case models.GranularityWeekly:
		return daysBetween(ua, ub) / 7
	case models.GranularityMonthly:
		return (ub.Year()-ua.Year())*12 + int(ub.Month()) - int(ua.Month())
	case models.GranularityYearly:
		return ub.Year() - ua.Year()
	default:
		return daysBetween(ua, ub)
	}
}

// daysBetween counts civil days between two UTC midnights
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// mondayOffset maps a weekday to its distance from the preceding Monday
func mondayOffset(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
