package models

import (
	"sort"
	"time"
)

// Streak aggregates one metadata header with the recorded entries in file
// order. The backing file path is the streak's identity within a directory.
type Streak struct {
	Meta    Metadata
	Entries []Entry
	Path    string
}

// SortedEntries returns a copy of the entries ordered by date ascending.
// The file itself is append-ordered, so entries may be out of order on disk.
func (s *Streak) SortedEntries() []Entry {
	out := make([]Entry, len(s.Entries))
	copy(out, s.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// FindEntry returns the index of the entry recording the exact instant t,
// or -1 if no entry matches.
func (s *Streak) FindEntry(t time.Time) int {
	for i, e := range s.Entries {
		if e.Date.Equal(t) {
			return i
		}
	}
	return -1
}

// EntriesOnDay returns the indices of entries falling on the given calendar
// date (YYYY-MM-DD).
func (s *Streak) EntriesOnDay(day string) []int {
	var idx []int
	for i, e := range s.Entries {
		if e.Day() == day {
			idx = append(idx, i)
		}
	}
	return idx
}
