package eventparse

import (
	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// IndexSet is a set of token positions.
type IndexSet map[int]struct{}

func (s IndexSet) add(indices ...int) {
	for _, i := range indices {
		s[i] = struct{}{}
	}
}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// TokensToSkip returns the positions of tokens that encode command or
// temporal meaning and must be excluded from titles.
func TokensToSkip(doc token.Doc) IndexSet {
	skip := make(IndexSet)

	for i, tok := range doc {
		if tok.Ent == token.EntityDate || tok.Ent == token.EntityTime {
			skip.add(i)
			continue
		}
		if _, ok := temporalWords[tok.Lower]; ok {
			skip.add(i)
			continue
		}
		if _, ok := commandVerbs[tok.Lower]; ok {
			skip.add(i)
			continue
		}
		if shouldSkipArticle(doc, i) {
			skip.add(i)
			continue
		}
		skip.add(timePhraseIndices(doc, i)...)
	}

	return skip
}

// shouldSkipArticle reports whether the article at i follows a command verb
// or precedes a generic placeholder noun.
func shouldSkipArticle(doc token.Doc, i int) bool {
	if _, ok := articles[doc[i].Lower]; !ok {
		return false
	}
	if i > 0 {
		if _, ok := commandVerbs[doc[i-1].Lower]; ok {
			return true
		}
	}
	if i < len(doc)-1 {
		if _, ok := genericNouns[doc[i+1].Lower]; ok {
			return true
		}
	}
	return false
}

// timePhraseIndices detects inline time phrases with bounded lookahead from
// position i: a numeral plus time unit (optionally led by "in"), a 4-token
// numeral range with trailing meridiem, or the pair "at night".
func timePhraseIndices(doc token.Doc, i int) []int {
	var indices []int
	tok := doc[i]

	if tok.LikeNum() {
		if i < len(doc)-1 {
			if _, ok := timeUnits[doc[i+1].Lower]; ok {
				indices = append(indices, i, i+1)
				if i > 0 && doc[i-1].Lower == "in" {
					indices = append(indices, i-1)
				}
			}
		}
		if i < len(doc)-2 {
			connector := doc[i+1].Lower
			if (connector == "-" || connector == "to") && doc[i+2].LikeNum() {
				if i < len(doc)-3 {
					if m := doc[i+3].Lower; m == "am" || m == "pm" {
						indices = append(indices, i, i+1, i+2, i+3)
					}
				}
			}
		}
		return indices
	}

	if tok.Lower == "in" && i < len(doc)-2 {
		_, isNumberWord := numberWords[doc[i+1].Lower]
		if doc[i+1].LikeNum() || isNumberWord {
			if _, ok := timeUnits[doc[i+2].Lower]; ok {
				indices = append(indices, i, i+1, i+2)
			}
		}
	}
	if tok.Lower == "at" && i < len(doc)-1 && doc[i+1].Lower == "night" {
		indices = append(indices, i, i+1)
	}
	return indices
}
