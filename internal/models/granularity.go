package models

import (
	"fmt"
	"strings"
)

// Granularity represents the time unit a tick or period is measured in
type Granularity string

const (
	GranularityHourly  Granularity = "Hourly"
	GranularityDaily   Granularity = "Daily"
	GranularityWeekly  Granularity = "Weekly"
	GranularityMonthly Granularity = "Monthly"
	GranularityYearly  Granularity = "Yearly"
)

// granularityRank orders granularities from finest to coarsest
var granularityRank = map[Granularity]int{
	GranularityHourly:  0,
	GranularityDaily:   1,
	GranularityWeekly:  2,
	GranularityMonthly: 3,
	GranularityYearly:  4,
}

// ParseGranularity parses a granularity name case-insensitively into its
// canonical form
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hourly":
		return GranularityHourly, nil
	case "daily":
		return GranularityDaily, nil
	case "weekly":
		return GranularityWeekly, nil
	case "monthly":
		return GranularityMonthly, nil
	case "yearly":
		return GranularityYearly, nil
	default:
		return "", fmt.Errorf("unknown granularity: %q", s)
	}
}

// Valid reports whether g is a known granularity
func (g Granularity) Valid() bool {
	_, ok := granularityRank[g]
	return ok
}

// FinerThan reports whether g denotes a strictly smaller time unit than other
func (g Granularity) FinerThan(other Granularity) bool {
	return granularityRank[g] < granularityRank[other]
}

func (g Granularity) String() string {
	return string(g)
}
