package postagger

import (
	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// assignDeps computes a shallow dependency layer over the tagged tokens.
// It covers the constructions the title pipeline consumes: the "to + verb"
// mark, verb arguments (dobj/nsubj), prepositional attachments
// (prep/pobj), and noun-phrase internals (det/amod/compound). Everything
// else keeps the generic dep label with itself as head.
func assignDeps(doc token.Doc) {
	root := firstVerb(doc)
	if root >= 0 {
		doc[root].Dep = token.DepRoot
		doc[root].Head = root
	}

	// "to" immediately before a verb is the infinitive marker; the verb
	// complements the clause it is embedded in.
	for i := 0; i < len(doc)-1; i++ {
		if doc[i].Lower != "to" {
			continue
		}
		if doc[i+1].POS != token.POSVerb {
			continue
		}
		doc[i].Dep = token.DepMark
		doc[i].Head = i + 1
		if i+1 != root {
			doc[i+1].Dep = "xcomp"
			if root >= 0 {
				doc[i+1].Head = root
			}
		}
	}

	// Nouns before the root verb are its subject.
	if root > 0 {
		for i := 0; i < root; i++ {
			if isNominal(doc[i]) && doc[i].Dep == token.DepDep {
				doc[i].Dep = token.DepNsubj
				doc[i].Head = root
			}
		}
	}

	for v := range doc {
		if doc[v].POS == token.POSVerb {
			attachArguments(doc, v)
		}
	}
}

// attachArguments links the span after verb v (up to the next verb) to v:
// the first bare noun cluster as direct object, prepositions and their
// objects, adjectives and determiners to their nouns, pronouns right after
// the verb as objects.
func attachArguments(doc token.Doc, v int) {
	end := len(doc)
	for i := v + 1; i < len(doc); i++ {
		if doc[i].POS == token.POSVerb || doc[i].Lower == "to" {
			end = i
			break
		}
	}

	prep := -1
	sawObject := false
	for i := v + 1; i < end; i++ {
		tok := &doc[i]
		switch {
		case tok.POS == token.POSAdp:
			prep = i
			tok.Dep = token.DepPrep
			tok.Head = v

		case tok.POS == token.POSPronoun && i == v+1:
			tok.Dep = token.DepDobj
			tok.Head = v
			sawObject = true

		case tok.POS == token.POSDet:
			if noun := nextNominal(doc, i+1, end); noun >= 0 {
				tok.Dep = token.DepDet
				tok.Head = noun
			}

		case tok.POS == token.POSAdjective:
			if noun := nextNominal(doc, i+1, end); noun >= 0 {
				tok.Dep = token.DepAmod
				tok.Head = noun
			}

		case isNominal(*tok):
			if head := clusterHead(doc, i, end); head != i {
				// Inner noun of a cluster modifies the final one.
				tok.Dep = token.DepCompound
				tok.Head = head
				continue
			}
			if prep >= 0 {
				tok.Dep = token.DepPobj
				tok.Head = prep
				prep = -1
			} else if !sawObject {
				tok.Dep = token.DepDobj
				tok.Head = v
				sawObject = true
			}
		}
	}
}

// firstVerb returns the index of the first verb, or -1.
func firstVerb(doc token.Doc) int {
	for i := range doc {
		if doc[i].POS == token.POSVerb {
			return i
		}
	}
	return -1
}

func isNominal(t token.Token) bool {
	switch t.POS {
	case token.POSNoun, token.POSProperN, token.POSNumeral:
		return true
	}
	return false
}

// nextNominal finds the next noun-like token in [from, end).
func nextNominal(doc token.Doc, from, end int) int {
	for i := from; i < end; i++ {
		if isNominal(doc[i]) {
			return i
		}
	}
	return -1
}

// clusterHead returns the last token of the contiguous nominal run that
// starts at i.
func clusterHead(doc token.Doc, i, end int) int {
	head := i
	for j := i + 1; j < end && isNominal(doc[j]); j++ {
		head = j
	}
	return head
}
