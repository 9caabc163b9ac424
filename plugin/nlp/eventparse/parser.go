package eventparse

import (
	"context"
	"strings"
	"time"
)

// Intent is the classification of a parsed phrase.
type Intent int

const (
	// IntentEvent is the default classification.
	IntentEvent Intent = iota
	// IntentReminder marks phrases that open with "remind me".
	IntentReminder
)

// String returns the wire representation of the intent.
func (i Intent) String() string {
	if i == IntentReminder {
		return "reminder"
	}
	return "event"
}

// DetectIntent classifies normalized text by its leading words.
func DetectIntent(normalized string) Intent {
	if strings.HasPrefix(normalized, "remind me") {
		return IntentReminder
	}
	return IntentEvent
}

// ParsedEvent is the result of parsing a single phrase. Datetime is nil
// when no date or time expression was recognized; EndTime is set exactly
// when a time range was detected.
type ParsedEvent struct {
	Title    string
	Datetime *time.Time
	EndTime  *time.Time
	Type     Intent
}

// Parser composes the extraction pipeline behind a single Parse entry
// point. It holds no cross-call state beyond its collaborators; concurrent
// use is safe as long as they are reentrant.
type Parser struct {
	annotator TokenAnnotator
	natural   NaturalDateResolver
	calendar  CalendarHeuristicResolver
	now       func() time.Time
}

// NewParser creates a parser wired to the given collaborators. Any of them
// may be nil, in which case the corresponding stage is skipped and the next
// fallback takes over.
func NewParser(annotator TokenAnnotator, natural NaturalDateResolver, calendar CalendarHeuristicResolver) *Parser {
	return &Parser{
		annotator: annotator,
		natural:   natural,
		calendar:  calendar,
		now:       time.Now,
	}
}

// WithClock returns a copy of the parser using the given clock.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	clone := *p
	clone.now = now
	return &clone
}

// Parse converts a scheduling phrase into a ParsedEvent. The wall clock is
// captured once at call start. The only errors returned are collaborator
// failures; "nothing recognized" is a valid result, never an error.
func (p *Parser) Parse(ctx context.Context, text string) (ParsedEvent, error) {
	if strings.TrimSpace(text) == "" {
		return ParsedEvent{Type: IntentEvent}, nil
	}

	now := p.now()

	// Range detection runs on the raw text so "2-4pm" survives symbol
	// substitution untouched.
	timeRange, hasRange := ExtractTimeRange(text, now)

	normalized := Normalize(text)
	intent := DetectIntent(normalized)

	date, hasDate, err := p.extractDatetime(ctx, normalized, now)
	if err != nil {
		return ParsedEvent{}, err
	}

	if hasRange {
		base := now
		if hasDate {
			base = date
		}
		start := MergeDateTime(base, &timeRange.Start)
		end := MergeDateTime(base, &timeRange.End)

		title, err := p.extractTitle(ctx, normalized)
		if err != nil {
			return ParsedEvent{}, err
		}
		return ParsedEvent{
			Title:    title,
			Datetime: &start,
			EndTime:  &end,
			Type:     intent,
		}, nil
	}

	if tod, ok := p.extractTime(text, date, hasDate, now); ok {
		base := now
		if hasDate {
			base = date
		}
		date = MergeDateTime(base, &tod)
		hasDate = true
	}

	title, err := p.extractTitle(ctx, normalized)
	if err != nil {
		return ParsedEvent{}, err
	}

	event := ParsedEvent{Title: title, Type: intent}
	if hasDate {
		event.Datetime = &date
	}
	return event, nil
}

// extractDatetime resolves an absolute date via the resolver cascade:
// natural-language resolver, then the calendar heuristic (accepted only on
// positive confidence), then the internal relative-offset rule. Each stage
// may legitimately come up empty; only collaborator failures are errors.
func (p *Parser) extractDatetime(ctx context.Context, text string, now time.Time) (time.Time, bool, error) {
	if p.natural != nil {
		t, ok, err := p.natural.Resolve(ctx, text, now)
		if err != nil {
			return time.Time{}, false, err
		}
		if ok {
			return t, true, nil
		}
	}

	if p.calendar != nil {
		t, confidence, err := p.calendar.Resolve(ctx, text, now)
		if err != nil {
			return time.Time{}, false, err
		}
		if confidence > 0 {
			return t, true, nil
		}
	}

	if t, ok := ExtractRelativeTime(text, now); ok {
		return t, true, nil
	}

	return time.Time{}, false, nil
}

// extractTime finds a single clock time: the start of a time range if one
// is present, otherwise an explicit time, but only when the resolved date
// does not already carry a time component. The asymmetry is deliberate; a
// date that arrived with its own clock time wins over re-extraction.
func (p *Parser) extractTime(text string, date time.Time, hasDate bool, now time.Time) (TimeOfDay, bool) {
	base := now
	if hasDate {
		base = date
	}

	if timeRange, ok := ExtractTimeRange(text, base); ok {
		return timeRange.Start, true
	}

	if hasDate && (date.Hour() != 0 || date.Minute() != 0) {
		return TimeOfDay{}, false
	}

	return ExtractExplicitTime(text)
}

// extractTitle runs the title cascade: infinitive phrase, part-of-speech
// fallback, lexical word filter, and finally the trimmed input itself, so a
// nonempty input never produces an empty title. Annotator failures
// propagate; they indicate a broken collaborator, not an unparseable input.
func (p *Parser) extractTitle(ctx context.Context, normalized string) (string, error) {
	if p.annotator != nil {
		doc, err := p.annotator.Annotate(ctx, normalized)
		if err != nil {
			return "", err
		}

		skip := TokensToSkip(doc)
		phrase := InfinitivePhrase(doc)

		if title, ok := BuildTitleFromTokens(doc, skip, phrase); ok {
			return title, nil
		}
		if title, ok := TitleFallback(doc, skip); ok {
			return title, nil
		}
	}

	if title := WordFilterFallback(normalized); title != "" {
		return title, nil
	}
	return strings.TrimSpace(normalized), nil
}
