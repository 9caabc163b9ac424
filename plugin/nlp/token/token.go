// Package token defines the annotated token model shared by the NLP plugins.
//
// A document is an index-addressed slice of tokens. Syntactic structure is
// stored as index lookups (Head) rather than pointers, and children are
// computed on demand by scanning the slice, so a document never contains
// reference cycles.
package token

import (
	"strconv"
	"strings"
	"unicode"
)

// EntityTag classifies a token as a date, a time, or neither.
type EntityTag string

const (
	EntityNone EntityTag = ""
	EntityDate EntityTag = "DATE"
	EntityTime EntityTag = "TIME"
)

// Coarse part-of-speech tags, following the universal tag set.
const (
	POSNoun      = "NOUN"
	POSVerb      = "VERB"
	POSProperN   = "PROPN"
	POSAdjective = "ADJ"
	POSAdverb    = "ADV"
	POSPronoun   = "PRON"
	POSAdp       = "ADP"
	POSDet       = "DET"
	POSNumeral   = "NUM"
	POSParticle  = "PART"
	POSOther     = "X"
)

// Dependency labels produced by the annotator and consumed by the phrase
// extractor.
const (
	DepMark      = "mark"
	DepRoot      = "ROOT"
	DepDobj      = "dobj"
	DepPobj      = "pobj"
	DepAttr      = "attr"
	DepAcomp     = "acomp"
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepPrep      = "prep"
	DepAmod      = "amod"
	DepCompound  = "compound"
	DepDet       = "det"
	DepDep       = "dep"
)

// Token is a single annotated unit of text.
type Token struct {
	Index int
	Text  string
	Lower string
	POS   string
	Dep   string
	Ent   EntityTag
	// Head is the index of the syntactic head within the owning Doc.
	// A root token points at itself.
	Head int
}

// IsAlpha reports whether the token text consists only of letters.
func (t Token) IsAlpha() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// spelledNumbers are the spelled-out numerals LikeNum recognizes in
// addition to digit strings.
var spelledNumbers = map[string]struct{}{
	"zero": {}, "one": {}, "two": {}, "three": {}, "four": {},
	"five": {}, "six": {}, "seven": {}, "eight": {}, "nine": {},
	"ten": {}, "eleven": {}, "twelve": {}, "thirteen": {},
	"fourteen": {}, "fifteen": {}, "sixteen": {}, "seventeen": {},
	"eighteen": {}, "nineteen": {}, "twenty": {}, "thirty": {},
	"forty": {}, "fifty": {}, "sixty": {}, "seventy": {}, "eighty": {},
	"ninety": {}, "hundred": {}, "thousand": {}, "million": {},
	"billion": {},
}

// LikeNum reports whether the token looks like a number, either a digit
// string or a spelled-out numeral.
func (t Token) LikeNum() bool {
	if t.Text == "" {
		return false
	}
	if _, err := strconv.Atoi(t.Text); err == nil {
		return true
	}
	_, ok := spelledNumbers[strings.ToLower(t.Text)]
	return ok
}

// Doc is an ordered sequence of annotated tokens. The sequence owns all
// tokens; Head values are lookup keys into the same slice.
type Doc []Token

// ChildrenOf returns the indices of all tokens whose head is i, in order.
func (d Doc) ChildrenOf(i int) []int {
	var children []int
	for j := range d {
		if j != i && d[j].Head == i {
			children = append(children, j)
		}
	}
	return children
}
