package eventparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeRange is a pair of clock times. End is not required to follow Start;
// ranges crossing midnight come out as-is.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

type timePatternKind int

const (
	patternTwelveHour timePatternKind = iota
	patternAtTwelveHour
	patternClock
)

// timePatterns are tried in order; the first match wins.
var timePatterns = []struct {
	re   *regexp.Regexp
	kind timePatternKind
}{
	{regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`), patternTwelveHour},
	{regexp.MustCompile(`\bat\s+(\d{1,2})\s*(am|pm)?\b`), patternAtTwelveHour},
	{regexp.MustCompile(`@(\d{1,2})(?:\s*(am|pm))?\b`), patternAtTwelveHour},
	{regexp.MustCompile(`@\s+(\d{1,2})\s*(am|pm)?\b`), patternAtTwelveHour},
	{regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`), patternClock},
	{regexp.MustCompile(`@(\d{1,2}):(\d{2})(?:\s*(am|pm))?\b`), patternClock},
	{regexp.MustCompile(`@\s+(\d{1,2}):(\d{2})\s*(am|pm)?\b`), patternClock},
}

var (
	noonPattern     = regexp.MustCompile(`\bnoon\b`)
	midnightPattern = regexp.MustCompile(`\bmidnight\b`)
	atNightPattern  = regexp.MustCompile(`\bat\s+night\b`)
)

// relativePatterns are tried in order; the first match wins.
var relativePatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`\bin\s+(\d+)\s+hours?\b`), time.Hour},
	{regexp.MustCompile(`\bin\s+(\d+)\s+minutes?\b`), time.Minute},
	{regexp.MustCompile(`\bin\s+(\d+)\s+days?\b`), 24 * time.Hour},
}

type rangePatternKind int

const (
	rangeFromNow rangePatternKind = iota
	rangeHours
	rangeClock
)

// rangePatterns are tried in order; the first match wins.
var rangePatterns = []struct {
	re   *regexp.Regexp
	kind rangePatternKind
}{
	{regexp.MustCompile(`now\s*-\s*(\d{1,2})\s*(am|pm)`), rangeFromNow},
	{regexp.MustCompile(`now\s+to\s+(\d{1,2})\s*(am|pm)`), rangeFromNow},
	{regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,2})\s*(am|pm)`), rangeHours},
	{regexp.MustCompile(`(\d{1,2})\s+to\s+(\d{1,2})\s*(am|pm)`), rangeHours},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s*(am|pm)?`), rangeClock},
}

// validClock reports whether an extracted hour/minute pair can represent a
// clock time: with a meridiem the hour must fit a 12-hour dial, without
// one a 24-hour dial.
func validClock(hour, minute int, meridiem string) bool {
	if minute < 0 || minute > 59 {
		return false
	}
	if meridiem != "" {
		return hour >= 1 && hour <= 12
	}
	return hour >= 0 && hour <= 23
}

// meridiemHour converts a 12-hour clock hour according to the am/pm marker.
// An empty marker leaves the hour unchanged.
func meridiemHour(hour int, meridiem string) int {
	switch meridiem {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}

// ExtractExplicitTime finds an explicit clock time in text. Fixed keywords
// (noon, midnight, "at night") take precedence over the pattern list.
func ExtractExplicitTime(text string) (TimeOfDay, bool) {
	lower := strings.ToLower(text)

	if noonPattern.MatchString(lower) {
		return TimeOfDay{Hour: 12}, true
	}
	if midnightPattern.MatchString(lower) {
		return TimeOfDay{}, true
	}
	if atNightPattern.MatchString(lower) {
		return TimeOfDay{Hour: 20}, true
	}

	for _, p := range timePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		switch p.kind {
		case patternTwelveHour, patternAtTwelveHour:
			hour, _ := strconv.Atoi(m[1])
			// A meridiem hour above 12 is a mismatch (e.g. the "15pm"
			// tail of "7:15pm"); let a later pattern claim it.
			if !validClock(hour, 0, m[2]) {
				continue
			}
			return TimeOfDay{Hour: meridiemHour(hour, m[2])}, true
		case patternClock:
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if !validClock(hour, minute, m[3]) {
				continue
			}
			return TimeOfDay{Hour: meridiemHour(hour, m[3]), Minute: minute}, true
		}
	}

	return TimeOfDay{}, false
}

// ExtractRelativeTime finds offsets like "in 2 hours" and applies them to
// base.
func ExtractRelativeTime(text string, base time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	for _, p := range relativePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, _ := strconv.Atoi(m[1])
		return base.Add(time.Duration(value) * p.unit), true
	}

	return time.Time{}, false
}

// ExtractTimeRange finds a time range such as "2-4pm" or "now to 6pm". For
// "now" ranges the start is base's current clock time. A single trailing
// meridiem applies to both ends.
func ExtractTimeRange(text string, base time.Time) (TimeRange, bool) {
	lower := strings.ToLower(text)

	for _, p := range rangePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		switch p.kind {
		case rangeFromNow:
			endHour, _ := strconv.Atoi(m[1])
			if !validClock(endHour, 0, m[2]) {
				continue
			}
			return TimeRange{
				Start: TimeOfDay{Hour: base.Hour(), Minute: base.Minute()},
				End:   TimeOfDay{Hour: meridiemHour(endHour, m[2])},
			}, true
		case rangeHours:
			startHour, _ := strconv.Atoi(m[1])
			endHour, _ := strconv.Atoi(m[2])
			if !validClock(startHour, 0, m[3]) || !validClock(endHour, 0, m[3]) {
				continue
			}
			return TimeRange{
				Start: TimeOfDay{Hour: meridiemHour(startHour, m[3])},
				End:   TimeOfDay{Hour: meridiemHour(endHour, m[3])},
			}, true
		case rangeClock:
			startHour, _ := strconv.Atoi(m[1])
			startMinute, _ := strconv.Atoi(m[2])
			endHour, _ := strconv.Atoi(m[3])
			endMinute, _ := strconv.Atoi(m[4])
			if !validClock(startHour, startMinute, m[5]) || !validClock(endHour, endMinute, m[5]) {
				continue
			}
			return TimeRange{
				Start: TimeOfDay{Hour: meridiemHour(startHour, m[5]), Minute: startMinute},
				End:   TimeOfDay{Hour: meridiemHour(endHour, m[5]), Minute: endMinute},
			}, true
		}
	}

	return TimeRange{}, false
}

// MergeDateTime sets the clock time of date to tod, zeroing seconds and
// sub-seconds. A nil tod returns date unchanged.
func MergeDateTime(date time.Time, tod *TimeOfDay) time.Time {
	if tod == nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour, tod.Minute, 0, 0, date.Location())
}
