// Package postagger implements the token annotation port on top of the
// prose tokenizer and tagger, with a lexicon-based entity layer and a
// shallow rule-based dependency layer sufficient for imperative scheduling
// phrases.
package postagger

import (
	"context"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"github.com/pkg/errors"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

// Annotator tokenizes and annotates text. It is stateless and safe for
// concurrent use.
type Annotator struct{}

// New creates an Annotator.
func New() *Annotator {
	return &Annotator{}
}

// Annotate returns the annotated token sequence for text.
func (a *Annotator) Annotate(_ context.Context, text string) (token.Doc, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}

	proseTokens := doc.Tokens()
	out := make(token.Doc, 0, len(proseTokens))
	for i, t := range proseTokens {
		out = append(out, token.Token{
			Index: i,
			Text:  t.Text,
			Lower: strings.ToLower(t.Text),
			POS:   coarsePOS(t.Tag),
			Dep:   token.DepDep,
			Head:  i,
		})
	}

	tagEntities(out)
	assignDeps(out)
	return out, nil
}

// coarsePOS maps Penn treebank tags to the coarse tag set.
func coarsePOS(tag string) string {
	switch {
	case strings.HasPrefix(tag, "NNP"):
		return token.POSProperN
	case strings.HasPrefix(tag, "NN"):
		return token.POSNoun
	case strings.HasPrefix(tag, "VB"), tag == "MD":
		return token.POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return token.POSAdjective
	case strings.HasPrefix(tag, "RB"):
		return token.POSAdverb
	case strings.HasPrefix(tag, "PRP"):
		return token.POSPronoun
	case tag == "IN":
		return token.POSAdp
	case tag == "DT":
		return token.POSDet
	case tag == "CD":
		return token.POSNumeral
	case tag == "TO":
		return token.POSParticle
	default:
		return token.POSOther
	}
}
