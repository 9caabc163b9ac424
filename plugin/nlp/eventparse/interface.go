// Package eventparse turns free-form scheduling phrases into structured
// event records: a title, optional start/end timestamps, and an intent.
//
// The pipeline is deterministic and rule-based. Tokenization and general
// date resolution are capability ports so the engines behind them stay
// swappable.
package eventparse

import (
	"context"
	"time"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// TokenAnnotator supplies an ordered sequence of annotated tokens for a
// text.
type TokenAnnotator interface {
	Annotate(ctx context.Context, text string) (token.Doc, error)
}

// NaturalDateResolver resolves a natural-language date expression relative
// to base. The boolean reports whether a date was recognized.
type NaturalDateResolver interface {
	Resolve(ctx context.Context, text string, base time.Time) (time.Time, bool, error)
}

// CalendarHeuristicResolver resolves calendar expressions relative to
// source. The returned confidence is positive when the result should be
// accepted.
type CalendarHeuristicResolver interface {
	Resolve(ctx context.Context, text string, source time.Time) (time.Time, int, error)
}
