package eventparse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// Friday, March 15 2024, 10:00 UTC.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestIntentString(t *testing.T) {
	assert.Equal(t, "event", IntentEvent.String())
	assert.Equal(t, "reminder", IntentReminder.String())
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(nil, nil, nil).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, ParsedEvent{Type: IntentEvent}, got)
}

func TestParseReminderWithResolvedDate(t *testing.T) {
	text := "remind me to call mom tomorrow at 5pm"
	doc := token.Doc{
		tk(0, "remind", token.POSVerb, token.DepRoot, 0),
		tk(1, "me", token.POSPronoun, token.DepDobj, 0),
		tk(2, "to", token.POSParticle, token.DepMark, 3),
		tk(3, "call", token.POSVerb, token.DepDep, 0),
		tk(4, "mom", token.POSNoun, token.DepDobj, 3),
		tkEnt(5, "tomorrow", token.POSNoun, token.DepDep, 3, token.EntityDate),
		tk(6, "at", token.POSAdp, token.DepPrep, 3),
		tkEnt(7, "5pm", token.POSNumeral, token.DepPobj, 6, token.EntityTime),
	}
	resolved := time.Date(2024, 3, 16, 17, 0, 0, 0, time.UTC)

	p := NewParser(
		&MockAnnotator{Docs: map[string]token.Doc{text: doc}},
		&MockNaturalResolver{Results: map[string]time.Time{text: resolved}},
		nil,
	).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "call mom", got.Title)
	assert.Equal(t, IntentReminder, got.Type)
	require.NotNil(t, got.Datetime)
	// The resolved date already carries a clock time, so the explicit
	// "5pm" is not extracted a second time.
	assert.Equal(t, resolved, *got.Datetime)
	assert.Nil(t, got.EndTime)
}

func TestParseTimeRange(t *testing.T) {
	text := "meeting 2-4pm"
	doc := token.Doc{
		tk(0, "meeting", token.POSNoun, token.DepRoot, 0),
		tk(1, "2", token.POSNumeral, token.DepDep, 0),
		tk(2, "-", token.POSOther, token.DepDep, 0),
		tk(3, "4", token.POSNumeral, token.DepDep, 0),
		tk(4, "pm", token.POSNoun, token.DepDep, 0),
	}

	p := NewParser(
		&MockAnnotator{Docs: map[string]token.Doc{text: doc}},
		&MockNaturalResolver{},
		nil,
	).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "meeting", got.Title)
	assert.Equal(t, IntentEvent, got.Type)
	require.NotNil(t, got.Datetime)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC), *got.Datetime)
	assert.Equal(t, time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC), *got.EndTime)
}

func TestParseRangeAnchoredToResolvedDate(t *testing.T) {
	text := "meeting tomorrow 2-4pm"
	doc := token.Doc{
		tk(0, "meeting", token.POSNoun, token.DepRoot, 0),
		tkEnt(1, "tomorrow", token.POSNoun, token.DepDep, 0, token.EntityDate),
		tk(2, "2", token.POSNumeral, token.DepDep, 0),
		tk(3, "-", token.POSOther, token.DepDep, 0),
		tk(4, "4", token.POSNumeral, token.DepDep, 0),
		tk(5, "pm", token.POSNoun, token.DepDep, 0),
	}
	resolved := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	p := NewParser(
		&MockAnnotator{Docs: map[string]token.Doc{text: doc}},
		&MockNaturalResolver{Results: map[string]time.Time{text: resolved}},
		nil,
	).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "meeting", got.Title)
	require.NotNil(t, got.Datetime)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, time.Date(2024, 3, 16, 14, 0, 0, 0, time.UTC), *got.Datetime)
	assert.Equal(t, time.Date(2024, 3, 16, 16, 0, 0, 0, time.UTC), *got.EndTime)
}

func TestParseCalendarFallback(t *testing.T) {
	resolved := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)

	p := NewParser(
		nil,
		&MockNaturalResolver{},
		&MockCalendarResolver{Result: resolved, Confidence: 1},
	).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), "dinner friday")
	require.NoError(t, err)

	assert.Equal(t, "dinner", got.Title)
	require.NotNil(t, got.Datetime)
	assert.Equal(t, resolved, *got.Datetime)
}

func TestParseCalendarZeroConfidenceIgnored(t *testing.T) {
	p := NewParser(
		nil,
		&MockNaturalResolver{},
		&MockCalendarResolver{Result: testNow, Confidence: 0},
	).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), "write report")
	require.NoError(t, err)

	assert.Equal(t, "write report", got.Title)
	assert.Nil(t, got.Datetime)
}

func TestParseRelativeOffset(t *testing.T) {
	p := NewParser(nil, &MockNaturalResolver{}, nil).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), "leave in 2 hours")
	require.NoError(t, err)

	assert.Equal(t, "leave", got.Title)
	require.NotNil(t, got.Datetime)
	assert.Equal(t, testNow.Add(2*time.Hour), *got.Datetime)
	assert.Nil(t, got.EndTime)
}

func TestParseExplicitTimeOnToday(t *testing.T) {
	p := NewParser(nil, &MockNaturalResolver{}, nil).WithClock(fixedClock)

	got, err := p.Parse(context.Background(), "dinner at 7pm")
	require.NoError(t, err)

	// Without an annotator the lexical filter cannot split "7pm", so the
	// fused token stays in the title.
	assert.Equal(t, "dinner 7pm", got.Title)
	require.NotNil(t, got.Datetime)
	assert.Equal(t, time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC), *got.Datetime)
}

func TestParseTitleNeverEmpty(t *testing.T) {
	p := NewParser(nil, nil, nil).WithClock(fixedClock)

	// Every word is temporal, so the cascade bottoms out at the trimmed
	// input itself.
	got, err := p.Parse(context.Background(), "tomorrow at noon")
	require.NoError(t, err)
	assert.Equal(t, "tomorrow at noon", got.Title)
}

func TestParseAnnotatorErrorPropagates(t *testing.T) {
	sentinel := errors.New("tagger unavailable")
	p := NewParser(&MockAnnotator{Err: sentinel}, nil, nil).WithClock(fixedClock)

	_, err := p.Parse(context.Background(), "call mom")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestParseResolverErrorPropagates(t *testing.T) {
	sentinel := errors.New("resolver unavailable")
	p := NewParser(nil, &MockNaturalResolver{Err: sentinel}, nil).WithClock(fixedClock)

	_, err := p.Parse(context.Background(), "call mom tomorrow")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestWithClockDoesNotMutateOriginal(t *testing.T) {
	p := NewParser(nil, nil, nil)
	clone := p.WithClock(fixedClock)

	assert.NotSame(t, p, clone)
	assert.Equal(t, testNow, clone.now())
}
