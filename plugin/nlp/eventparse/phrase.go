package eventparse

import (
	"strings"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// Dependency relations gathered from an infinitive verb's children.
var phraseArgumentDeps = map[string]struct{}{
	token.DepDobj: {}, token.DepPobj: {}, token.DepAttr: {},
	token.DepAcomp: {}, token.DepNsubj: {}, token.DepNsubjPass: {},
}

// Relations followed one more level down from those children.
var phraseModifierDeps = map[string]struct{}{
	token.DepPrep: {}, token.DepPobj: {}, token.DepAmod: {},
	token.DepCompound: {},
}

// InfinitivePhrase collects the token positions of every "to + verb"
// construction: the verb, its argument children, and selected grandchildren.
// An empty set means the input has no such construction.
func InfinitivePhrase(doc token.Doc) IndexSet {
	phrase := make(IndexSet)

	for _, tok := range doc {
		if tok.Dep != token.DepMark || tok.Lower != "to" {
			continue
		}
		verb := tok.Head
		if verb < 0 || verb >= len(doc) || doc[verb].POS != token.POSVerb {
			continue
		}

		phrase.add(verb)
		for _, child := range doc.ChildrenOf(verb) {
			if _, ok := phraseArgumentDeps[doc[child].Dep]; ok {
				phrase.add(child)
				addPhraseChildren(doc, child, phrase)
			} else if doc[child].Dep == token.DepPrep {
				phrase.add(child)
				for _, prepChild := range doc.ChildrenOf(child) {
					if doc[prepChild].Dep == token.DepPobj {
						phrase.add(prepChild)
					}
				}
			}
		}
	}

	return phrase
}

// addPhraseChildren pulls modifier and object descendants of a phrase
// argument into the set, one extra level deep.
func addPhraseChildren(doc token.Doc, i int, phrase IndexSet) {
	for _, child := range doc.ChildrenOf(i) {
		if _, ok := phraseModifierDeps[doc[child].Dep]; !ok {
			continue
		}
		phrase.add(child)
		for _, grandchild := range doc.ChildrenOf(child) {
			dep := doc[grandchild].Dep
			if dep == token.DepPobj || dep == token.DepAmod {
				phrase.add(grandchild)
			}
		}
	}
}

// BuildTitleFromTokens joins, in sequence order, every token inside the
// infinitive phrase that is not in the skip set. It reports false when the
// phrase set is empty or nothing survives the skip set.
func BuildTitleFromTokens(doc token.Doc, skip, phrase IndexSet) (string, bool) {
	if len(phrase) == 0 {
		return "", false
	}

	var parts []string
	for i, tok := range doc {
		if skip.Has(i) {
			continue
		}
		if phrase.Has(i) {
			parts = append(parts, tok.Text)
		}
	}

	title := strings.TrimSpace(strings.Join(parts, " "))
	return title, title != ""
}
