package eventparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExplicitTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
		found bool
	}{
		{"TwelveHourPM", "3pm", TimeOfDay{15, 0}, true},
		{"TwelveHourAM", "3am", TimeOfDay{3, 0}, true},
		{"NoonHour", "12pm", TimeOfDay{12, 0}, true},
		{"MidnightHour", "12am", TimeOfDay{0, 0}, true},
		{"Noon", "lunch at noon", TimeOfDay{12, 0}, true},
		{"Midnight", "leave at midnight", TimeOfDay{0, 0}, true},
		{"AtNight", "do laundry at night", TimeOfDay{20, 0}, true},
		{"AtHour", "meet at 5", TimeOfDay{5, 0}, true},
		{"AtHourPM", "meet at 5 pm", TimeOfDay{17, 0}, true},
		{"Clock", "standup 9:30", TimeOfDay{9, 30}, true},
		{"ClockPM", "dinner 7:15pm", TimeOfDay{19, 15}, true},
		{"NoTime", "call mom", TimeOfDay{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractExplicitTime(tt.input)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractRelativeTime(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
		found bool
	}{
		{"Hours", "in 2 hours", base.Add(2 * time.Hour), true},
		{"OneHour", "in 1 hour", base.Add(time.Hour), true},
		{"Minutes", "in 30 minutes", base.Add(30 * time.Minute), true},
		{"Days", "in 3 days", base.Add(72 * time.Hour), true},
		{"NoMatch", "sometime soon", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractRelativeTime(tt.input, base)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractTimeRange(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 37, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  TimeRange
		found bool
	}{
		{"HoursPM", "meeting 2-4pm", TimeRange{TimeOfDay{14, 0}, TimeOfDay{16, 0}}, true},
		{"HoursTo", "meeting 2 to 4pm", TimeRange{TimeOfDay{14, 0}, TimeOfDay{16, 0}}, true},
		{"HoursAM", "9-11am", TimeRange{TimeOfDay{9, 0}, TimeOfDay{11, 0}}, true},
		{"Clock", "9:30-10:45am", TimeRange{TimeOfDay{9, 30}, TimeOfDay{10, 45}}, true},
		{"ClockNoMeridiem", "10:00-11:30", TimeRange{TimeOfDay{10, 0}, TimeOfDay{11, 30}}, true},
		{"FromNow", "busy now-5pm", TimeRange{TimeOfDay{10, 37}, TimeOfDay{17, 0}}, true},
		{"FromNowTo", "busy now to 6am", TimeRange{TimeOfDay{10, 37}, TimeOfDay{6, 0}}, true},
		{"NoRange", "meeting at 3pm", TimeRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractTimeRange(tt.input, base)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Ranges are reported exactly as written; an end earlier than the start
// (crossing midnight) is passed through without reordering.
func TestExtractTimeRangeAcrossMidnight(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	got, found := ExtractTimeRange("11-2pm", base)
	require.True(t, found)
	assert.Equal(t, TimeOfDay{23, 0}, got.Start)
	assert.Equal(t, TimeOfDay{14, 0}, got.End)
}

func TestMergeDateTime(t *testing.T) {
	date := time.Date(2026, 8, 30, 8, 15, 42, 999, time.UTC)

	t.Run("NilKeepsDate", func(t *testing.T) {
		assert.Equal(t, date, MergeDateTime(date, nil))
	})

	t.Run("ReplacesClockAndZeroesSeconds", func(t *testing.T) {
		got := MergeDateTime(date, &TimeOfDay{Hour: 17, Minute: 30})
		assert.Equal(t, time.Date(2026, 8, 30, 17, 30, 0, 0, time.UTC), got)
	})
}
