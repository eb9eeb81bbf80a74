package constants

import "time"

const (
	AppName = "streak"
	Version = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the layout for sub-daily ticks (ISO-8601 without zone,
	// matching what the streak.txt format stores on disk)
	DateTimeFormat = "2006-01-02T15:04:05"

	// Streak file naming
	StreakFilePrefix = "streak-"
	StreakFileSuffix = ".txt"

	// Front matter delimiter line
	FrontMatterDelimiter = "---"

	// Write retry policy for transient filesystem errors
	WriteMaxRetries = 1
	WriteRetryDelay = 50 * time.Millisecond
)
