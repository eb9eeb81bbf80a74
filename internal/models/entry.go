package models

import (
	"time"

	"github.com/julianstephens/streak/internal/constants"
)

// Entry represents one recorded tick: a date, an optional quantity and an
// optional comment. Immutable value type.
type Entry struct {
	Date     time.Time
	HasTime  bool // whether the source token carried a time-of-day component
	Quantity *float64
	Comment  string
}

// NewEntry creates an entry for a calendar date
func NewEntry(date time.Time) Entry {
	return Entry{Date: date}
}

// DateString formats the entry date the way it is stored on disk
func (e Entry) DateString() string {
	if e.HasTime {
		return e.Date.Format(constants.DateTimeFormat)
	}
	return e.Date.Format(constants.DateFormat)
}

// SameTimestamp reports whether two entries record the exact same instant
func (e Entry) SameTimestamp(other Entry) bool {
	return e.Date.Equal(other.Date)
}

// Day returns the entry's calendar date string (YYYY-MM-DD)
func (e Entry) Day() string {
	return e.Date.Format(constants.DateFormat)
}
