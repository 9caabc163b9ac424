package postagger

import (
	"regexp"
	"strings"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// dateWords are tokens tagged as DATE entities.
var dateWords = map[string]struct{}{
	"today": {}, "tomorrow": {}, "yesterday": {}, "tonight": {},
	"monday": {}, "mon": {}, "tuesday": {}, "tue": {}, "wednesday": {},
	"wed": {}, "thursday": {}, "thu": {}, "friday": {}, "fri": {},
	"saturday": {}, "sat": {}, "sunday": {}, "sun": {},
	"january": {}, "jan": {}, "february": {}, "feb": {}, "march": {},
	"mar": {}, "april": {}, "apr": {}, "may": {}, "june": {}, "jun": {},
	"july": {}, "jul": {}, "august": {}, "aug": {}, "september": {},
	"sep": {}, "october": {}, "oct": {}, "november": {}, "nov": {},
	"december": {}, "dec": {},
}

// timeWords are tokens tagged as TIME entities.
var timeWords = map[string]struct{}{
	"noon": {}, "midnight": {}, "am": {}, "pm": {},
}

// clockToken matches self-contained clock tokens like "5pm" or "9:30".
var clockToken = regexp.MustCompile(`^\d{1,2}(:\d{2})?(am|pm)?$`)

// tagEntities sets DATE/TIME entity tags from the lexicon and clock
// patterns. A bare numeral directly before an am/pm marker counts as TIME.
func tagEntities(doc token.Doc) {
	for i := range doc {
		lower := doc[i].Lower
		if _, ok := dateWords[lower]; ok {
			doc[i].Ent = token.EntityDate
			continue
		}
		if _, ok := timeWords[lower]; ok {
			doc[i].Ent = token.EntityTime
			continue
		}
		// "5pm" and "9:30" qualify; a bare "5" does not.
		if clockToken.MatchString(lower) && containsClockMarker(lower) {
			doc[i].Ent = token.EntityTime
			continue
		}
		if doc[i].LikeNum() && i < len(doc)-1 {
			if next := doc[i+1].Lower; next == "am" || next == "pm" {
				doc[i].Ent = token.EntityTime
			}
		}
	}
}

func containsClockMarker(s string) bool {
	if strings.ContainsRune(s, ':') {
		return true
	}
	return len(s) > 2 && (strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm"))
}
