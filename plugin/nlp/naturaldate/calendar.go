package naturaldate

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relDayOffsets maps relative day words to day offsets.
var relDayOffsets = map[string]int{
	"today":     0,
	"tonight":   0,
	"tomorrow":  1,
	"yesterday": -1,
}

// weekdays maps weekday names and abbreviations to time.Weekday.
var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// months maps month names and abbreviations to time.Month.
var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	wordPattern     = regexp.MustCompile(`[a-z@]+|\d+`)
	clockPattern    = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	monthDayPattern = regexp.MustCompile(`\b([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
)

// CalendarResolver is a deterministic calendar heuristic for
// abbreviation-heavy, low-context phrasing. Confidence counts the matched
// components; zero means the result must be discarded.
type CalendarResolver struct{}

// NewCalendarResolver creates the heuristic resolver.
func NewCalendarResolver() *CalendarResolver {
	return &CalendarResolver{}
}

// Resolve scans text for a relative day word, a weekday, or a month-day
// pair, plus an optional meridiem clock time, all anchored at source.
func (r *CalendarResolver) Resolve(_ context.Context, text string, source time.Time) (time.Time, int, error) {
	lower := strings.ToLower(text)
	result := source
	confidence := 0

	if day, ok := r.resolveDay(lower, source); ok {
		result = day
		confidence++
	}

	if hour, minute, ok := r.resolveClock(lower); ok {
		result = time.Date(result.Year(), result.Month(), result.Day(),
			hour, minute, 0, 0, result.Location())
		confidence++
	}

	return result, confidence, nil
}

// resolveDay finds the date component: relative day words first, then
// weekday names ("next" pushes a full week ahead), then month-day pairs
// which roll into the next year once past.
func (r *CalendarResolver) resolveDay(lower string, source time.Time) (time.Time, bool) {
	words := wordPattern.FindAllString(lower, -1)

	for i, word := range words {
		if offset, ok := relDayOffsets[word]; ok {
			return source.AddDate(0, 0, offset), true
		}
		if target, ok := weekdays[word]; ok {
			ahead := (int(target) - int(source.Weekday()) + 7) % 7
			if ahead == 0 {
				ahead = 7
			}
			if i > 0 && words[i-1] == "next" {
				ahead += 7
			}
			return source.AddDate(0, 0, ahead), true
		}
	}

	if m := monthDayPattern.FindStringSubmatch(lower); m != nil {
		if month, ok := months[m[1]]; ok {
			day, _ := strconv.Atoi(m[2])
			result := time.Date(source.Year(), month, day, source.Hour(), source.Minute(), 0, 0, source.Location())
			if result.Before(source) {
				result = result.AddDate(1, 0, 0)
			}
			if result.Day() == day {
				return result, true
			}
		}
	}

	return time.Time{}, false
}

// resolveClock finds a meridiem clock time.
func (r *CalendarResolver) resolveClock(lower string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if hour > 12 {
		return 0, 0, false
	}
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if m[3] == "pm" && hour != 12 {
		hour += 12
	} else if m[3] == "am" && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}
