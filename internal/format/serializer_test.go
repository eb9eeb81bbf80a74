package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/streak/internal/models"
)

func mustSerialize(t *testing.T, meta models.Metadata, entries []models.Entry) string {
	t.Helper()
	raw, err := Serialize(meta, entries)
	require.NoError(t, err)
	return raw
}

func TestSerializeOmitsBlockForDefaults(t *testing.T) {
	meta := models.DefaultMetadata("pushups")
	entries := []models.Entry{{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}}

	raw := mustSerialize(t, meta, entries)
	assert.Equal(t, "2021-01-01\n", raw)
}

func TestSerializeEmitsBlockWhenExplicit(t *testing.T) {
	meta := models.Metadata{
		Name:             "Daily Pushups",
		Tick:             models.GranularityDaily,
		HadExplicitBlock: true,
	}

	raw := mustSerialize(t, meta, nil)
	assert.True(t, strings.HasPrefix(raw, "---\n"))
	assert.Contains(t, raw, "name: Daily Pushups\n")
	assert.Contains(t, raw, "tick: Daily\n")
	assert.True(t, strings.HasSuffix(raw, "---\n"))
}

func TestSerializePreservesEntryOrder(t *testing.T) {
	// Append-ordered files may be out of chronological order; the
	// serializer must not reorder them
	entries := []models.Entry{
		{Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	raw := mustSerialize(t, models.DefaultMetadata("x"), entries)
	assert.Equal(t, "2021-01-05\n2021-01-02\n", raw)
}

func TestEntryLine(t *testing.T) {
	qty := func(f float64) *float64 { return &f }

	tests := []struct {
		name  string
		entry models.Entry
		want  string
	}{
		{
			name:  "bare date",
			entry: models.Entry{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
			want:  "2025-01-05",
		},
		{
			name: "quantity",
			entry: models.Entry{
				Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Quantity: qty(20),
			},
			want: "2025-01-05 20",
		},
		{
			name: "quantity and comment",
			entry: models.Entry{
				Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Quantity: qty(20),
				Comment:  "reps # Felt great!",
			},
			want: "2025-01-05 20 reps # Felt great!",
		},
		{
			name: "comment alone gets no marker",
			entry: models.Entry{
				Date:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Comment: "rest day",
			},
			want: "2025-01-05 rest day",
		},
		{
			name: "numeric-leading comment needs marker",
			entry: models.Entry{
				Date:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Comment: "5 miles planned",
			},
			want: "2025-01-05 # 5 miles planned",
		},
		{
			name: "hash-leading comment needs marker",
			entry: models.Entry{
				Date:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Comment: "#goals",
			},
			want: "2025-01-05 # #goals",
		},
		{
			name: "datetime entry",
			entry: models.Entry{
				Date:    time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC),
				HasTime: true,
			},
			want: "2025-01-05T10:30:00",
		},
		{
			name: "fractional quantity",
			entry: models.Entry{
				Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Quantity: qty(12.5),
			},
			want: "2025-01-05 12.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryLine(tt.entry))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	qty := func(f float64) *float64 { return &f }

	tests := []struct {
		name    string
		meta    models.Metadata
		entries []models.Entry
	}{
		{
			name: "defaults with plain entries",
			meta: models.DefaultMetadata("pushups"),
			entries: []models.Entry{
				{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
				{Date: time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "explicit block with period and frequency",
			meta: models.Metadata{
				Name:             "Morning Run",
				Tick:             models.GranularityDaily,
				Period:           models.GranularityWeekly,
				Frequency:        3,
				HadExplicitBlock: true,
			},
			entries: []models.Entry{
				{Date: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), Quantity: qty(5), Comment: "km # cold morning"},
				{Date: time.Date(2021, 2, 3, 0, 0, 0, 0, time.UTC), Comment: "rest day"},
			},
		},
		{
			name: "extra front matter keys survive",
			meta: models.Metadata{
				Name:             "Reading",
				Tick:             models.GranularityDaily,
				Extra:            map[string]string{"goal": "30 books"},
				HadExplicitBlock: true,
			},
			entries: []models.Entry{
				{Date: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "hourly entries with awkward comments",
			meta: models.Metadata{
				Name:             "Water",
				Tick:             models.GranularityHourly,
				HadExplicitBlock: true,
			},
			entries: []models.Entry{
				{Date: time.Date(2021, 3, 1, 9, 0, 0, 0, time.UTC), HasTime: true, Comment: "500 ml"},
				{Date: time.Date(2021, 3, 1, 11, 0, 0, 0, time.UTC), HasTime: true, Comment: "#hydrate"},
			},
		},
		{
			name:    "empty entry list",
			meta:    models.Metadata{Name: "New", Tick: models.GranularityDaily, HadExplicitBlock: true},
			entries: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustSerialize(t, tt.meta, tt.entries)
			meta, entries, err := Parse(tt.meta.Name, raw)
			require.NoError(t, err)

			assert.Equal(t, tt.meta.Name, meta.Name)
			assert.Equal(t, tt.meta.Tick, meta.Tick)
			assert.Equal(t, tt.meta.Period, meta.Period)
			assert.Equal(t, tt.meta.Frequency, meta.Frequency)
			assert.Equal(t, tt.meta.Extra, meta.Extra)

			require.Len(t, entries, len(tt.entries))
			for i, want := range tt.entries {
				got := entries[i]
				assert.True(t, got.Date.Equal(want.Date), "entry %d date %v != %v", i, got.Date, want.Date)
				assert.Equal(t, want.HasTime, got.HasTime, "entry %d", i)
				assert.Equal(t, want.Quantity, got.Quantity, "entry %d", i)
				assert.Equal(t, want.Comment, got.Comment, "entry %d", i)
			}
		})
	}
}
