package eventparse

import (
	"strings"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// contentPOS are the part-of-speech tags retained by the fallback title
// builder.
var contentPOS = map[string]struct{}{
	token.POSNoun: {}, token.POSVerb: {}, token.POSProperN: {},
	token.POSAdjective: {},
}

// TitleFallback builds a title from all content tokens outside the skip
// set. Used when no infinitive phrase was found.
func TitleFallback(doc token.Doc, skip IndexSet) (string, bool) {
	var parts []string
	for i, tok := range doc {
		if skip.Has(i) {
			continue
		}
		_, isContent := contentPOS[tok.POS]
		if !isContent && !tok.IsAlpha() {
			continue
		}
		if len(tok.Text) > 1 || tok.Lower == "i" || tok.Lower == "a" {
			parts = append(parts, tok.Text)
		}
	}

	title := strings.TrimSpace(strings.Join(parts, " "))
	return title, title != ""
}

// WordFilterFallback strips temporal and command words from
// whitespace-split text using purely lexical and positional rules. It is
// the last resort when annotated tokens are unusable.
func WordFilterFallback(text string) string {
	words := strings.Fields(text)
	skip := make(IndexSet)
	var filtered []string

	for i, word := range words {
		lower := strings.ToLower(word)

		if _, ok := temporalWords[lower]; ok {
			skip.add(i)
			continue
		}
		if _, ok := commandVerbs[lower]; ok {
			skip.add(i)
			continue
		}

		if _, ok := articles[lower]; ok && i > 0 {
			if _, ok := commandVerbs[strings.ToLower(words[i-1])]; ok {
				skip.add(i)
				continue
			}
		}

		if lower == "at" && i < len(words)-1 && strings.ToLower(words[i+1]) == "night" {
			skip.add(i, i+1)
			continue
		}

		if _, ok := timeUnits[lower]; ok && i > 0 {
			prev := strings.ToLower(words[i-1])
			_, isNumberWord := numberWords[prev]
			if isDigits(words[i-1]) || isNumberWord {
				skip.add(i, i-1)
				if i > 1 && strings.ToLower(words[i-2]) == "in" {
					skip.add(i - 2)
				}
				continue
			}
		}

		if isDigits(word) && i < len(words)-1 {
			next := strings.ToLower(words[i+1])
			if _, ok := timeUnits[next]; ok {
				skip.add(i)
				continue
			}
			if (next == "-" || next == "to") && i < len(words)-2 && isDigits(words[i+2]) {
				if i < len(words)-3 {
					if m := strings.ToLower(words[i+3]); m == "am" || m == "pm" {
						skip.add(i, i+1, i+2, i+3)
						continue
					}
				}
			}
		}

		if (lower == "-" || lower == "to") && i > 0 && i < len(words)-1 {
			if isDigits(words[i-1]) && isDigits(words[i+1]) && i < len(words)-2 {
				if m := strings.ToLower(words[i+2]); m == "am" || m == "pm" {
					skip.add(i)
					continue
				}
			}
		}

		if !skip.Has(i) {
			filtered = append(filtered, word)
		}
	}

	return strings.TrimSpace(strings.Join(filtered, " "))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
