package errors

import (
	"fmt"
	"testing"
)

func TestFormatErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *FormatError
		want string
	}{
		{
			name: "bad line",
			err:  NewFormatError(3, "not-a-date", "unparseable entry"),
			want: `line 3: unparseable entry: "not-a-date"`,
		},
		{
			name: "no raw text",
			err:  &FormatError{Line: 1, Reason: "unclosed front matter block"},
			want: "line 1: unclosed front matter block",
		},
		{
			name: "duplicate",
			err:  NewDuplicateEntryError(5, 2, "2021-01-01"),
			want: "line 5: duplicate entry for 2021-01-01 (first seen on line 2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("tick", "unknown granularity %q", "biweekly")
	want := `tick: unknown granularity "biweekly"`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	bare := &ValidationError{Reason: "nothing to edit"}
	if got := bare.Error(); got != "nothing to edit" {
		t.Errorf("got %q", got)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Identifier: "pushups"}
	if got := err.Error(); got != `streak "pushups" not found` {
		t.Errorf("got %q", got)
	}
}

func TestAmbiguousErrorMessage(t *testing.T) {
	err := &AmbiguousError{Identifier: "run", Matches: []string{"streak-morning-run.txt", "streak-evening-run.txt"}}
	want := `multiple streaks match "run": streak-morning-run.txt, streak-evening-run.txt`
	if got := err.Error(); got != want {
		t.Errorf("got %q", got)
	}
}

func TestClassifiers(t *testing.T) {
	formatErr := fmt.Errorf("parsing file: %w", NewFormatError(1, "x", "bad"))
	validationErr := fmt.Errorf("checking: %w", NewValidationError("name", "must not be empty"))
	notFoundErr := fmt.Errorf("loading: %w", &NotFoundError{Identifier: "x"})

	if !IsFormat(formatErr) {
		t.Error("IsFormat should see through wrapping")
	}
	if IsFormat(validationErr) {
		t.Error("IsFormat matched a validation error")
	}
	if !IsValidation(validationErr) {
		t.Error("IsValidation should see through wrapping")
	}
	if !IsNotFound(notFoundErr) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(formatErr) {
		t.Error("IsNotFound matched a format error")
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"format", NewFormatError(1, "x", "bad"), false},
		{"validation", NewValidationError("f", "bad"), false},
		{"not found", &NotFoundError{Identifier: "x"}, false},
		{"io", fmt.Errorf("disk full"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable = %v, want %v", got, tt.want)
			}
		})
	}
}
