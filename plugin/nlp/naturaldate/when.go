// Package naturaldate provides the date-resolution engines behind the
// eventparse resolver ports: a general natural-language resolver built on
// olebedev/when and a deterministic calendar heuristic.
package naturaldate

import (
	"context"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/pkg/errors"
)

// WhenResolver resolves natural-language dates with the when engine,
// using the English and common rule sets and the call's base as the
// relative anchor.
type WhenResolver struct {
	parser *when.Parser
}

// NewWhenResolver creates a resolver with the en + common rule sets.
func NewWhenResolver() *WhenResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenResolver{parser: w}
}

// Resolve parses text relative to base. The boolean reports whether any
// date expression was found.
func (r *WhenResolver) Resolve(_ context.Context, text string, base time.Time) (time.Time, bool, error) {
	result, err := r.parser.Parse(text, base)
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "when parse")
	}
	if result == nil {
		return time.Time{}, false, nil
	}
	return result.Time, true, nil
}
