package eventparse

import (
	"context"
	"time"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// MockAnnotator is a TokenAnnotator for testing. It returns the canned Doc
// for an input, or Err if set.
type MockAnnotator struct {
	Docs map[string]token.Doc
	Err  error
}

// Annotate returns the canned document for text.
func (m *MockAnnotator) Annotate(_ context.Context, text string) (token.Doc, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Docs[text], nil
}

// MockNaturalResolver is a NaturalDateResolver for testing.
type MockNaturalResolver struct {
	Results map[string]time.Time
	Err     error
}

// Resolve returns the canned result for text.
func (m *MockNaturalResolver) Resolve(_ context.Context, text string, _ time.Time) (time.Time, bool, error) {
	if m.Err != nil {
		return time.Time{}, false, m.Err
	}
	t, ok := m.Results[text]
	return t, ok, nil
}

// MockCalendarResolver is a CalendarHeuristicResolver for testing.
type MockCalendarResolver struct {
	Result     time.Time
	Confidence int
	Err        error
}

// Resolve returns the canned result and confidence.
func (m *MockCalendarResolver) Resolve(_ context.Context, _ string, _ time.Time) (time.Time, int, error) {
	if m.Err != nil {
		return time.Time{}, 0, m.Err
	}
	return m.Result, m.Confidence, nil
}

var (
	_ TokenAnnotator            = (*MockAnnotator)(nil)
	_ NaturalDateResolver       = (*MockNaturalResolver)(nil)
	_ CalendarHeuristicResolver = (*MockCalendarResolver)(nil)
)
