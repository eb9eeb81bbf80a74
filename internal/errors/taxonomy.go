package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FormatError describes a malformed streak file. Line is 1-based; for
// duplicate entries PrevLine is the line the date first appeared on.
type FormatError struct {
	Line     int
	PrevLine int
	Raw      string
	Reason   string
}

func (e *FormatError) Error() string {
	if e.PrevLine > 0 {
		return fmt.Sprintf("line %d: %s (first seen on line %d)", e.Line, e.Reason, e.PrevLine)
	}
	if e.Raw != "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Raw)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// NewFormatError creates a FormatError for a single bad line
func NewFormatError(line int, raw, reason string) *FormatError {
	return &FormatError{Line: line, Raw: raw, Reason: reason}
}

// NewDuplicateEntryError creates a FormatError for an entry whose date was
// already recorded on an earlier line
func NewDuplicateEntryError(line, prevLine int, date string) *FormatError {
	return &FormatError{
		Line:     line,
		PrevLine: prevLine,
		Reason:   fmt.Sprintf("duplicate entry for %s", date),
	}
}

// ValidationError describes invalid metadata or an invalid operation argument
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError means a streak identifier has no backing file
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("streak %q not found", e.Identifier)
}

// AmbiguousError means a name matched more than one streak file
type AmbiguousError struct {
	Identifier string
	Matches    []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple streaks match %q: %s", e.Identifier, strings.Join(e.Matches, ", "))
}

// IsFormat reports whether err is a FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// Retryable reports whether err may be retried on write. Format and
// validation failures are deterministic and must not be retried.
func Retryable(err error) bool {
	return err != nil && !IsFormat(err) && !IsValidation(err) && !IsNotFound(err)
}
