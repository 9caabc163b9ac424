package eventparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrygo/eventsense/plugin/nlp/token"
)

func TestInfinitivePhrase(t *testing.T) {
	tests := []struct {
		name string
		doc  token.Doc
		want []int
	}{
		{
			name: "verb with direct object",
			doc: token.Doc{
				tk(0, "remind", token.POSVerb, token.DepRoot, 0),
				tk(1, "me", token.POSPronoun, token.DepDobj, 0),
				tk(2, "to", token.POSParticle, token.DepMark, 3),
				tk(3, "call", token.POSVerb, token.DepDep, 0),
				tk(4, "mom", token.POSNoun, token.DepDobj, 3),
				tk(5, "tomorrow", token.POSNoun, token.DepDep, 3),
			},
			want: []int{3, 4},
		},
		{
			name: "prepositional object follows prep",
			doc: token.Doc{
				tk(0, "remind", token.POSVerb, token.DepRoot, 0),
				tk(1, "me", token.POSPronoun, token.DepDobj, 0),
				tk(2, "to", token.POSParticle, token.DepMark, 3),
				tk(3, "go", token.POSVerb, token.DepDep, 0),
				tk(4, "to", token.POSAdp, token.DepPrep, 3),
				tk(5, "the", token.POSDet, token.DepDet, 6),
				tk(6, "gym", token.POSNoun, token.DepPobj, 4),
			},
			want: []int{3, 4, 6},
		},
		{
			name: "modifiers of the object come along",
			doc: token.Doc{
				tk(0, "to", token.POSParticle, token.DepMark, 1),
				tk(1, "book", token.POSVerb, token.DepRoot, 1),
				tk(2, "a", token.POSDet, token.DepDet, 5),
				tk(3, "large", token.POSAdjective, token.DepAmod, 5),
				tk(4, "conference", token.POSNoun, token.DepCompound, 5),
				tk(5, "room", token.POSNoun, token.DepDobj, 1),
			},
			want: []int{1, 3, 4, 5},
		},
		{
			name: "mark pointing at a non-verb is ignored",
			doc: token.Doc{
				tk(0, "to", token.POSParticle, token.DepMark, 1),
				tk(1, "paris", token.POSProperN, token.DepRoot, 1),
			},
			want: []int{},
		},
		{
			name: "no infinitive construction",
			doc: token.Doc{
				tk(0, "team", token.POSNoun, token.DepCompound, 1),
				tk(1, "standup", token.POSNoun, token.DepRoot, 1),
			},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InfinitivePhrase(tt.doc)
			assert.Equal(t, tt.want, sortedIndices(got))
		})
	}
}

func TestBuildTitleFromTokens(t *testing.T) {
	doc := token.Doc{
		tk(0, "remind", token.POSVerb, token.DepRoot, 0),
		tk(1, "me", token.POSPronoun, token.DepDobj, 0),
		tk(2, "to", token.POSParticle, token.DepMark, 3),
		tk(3, "call", token.POSVerb, token.DepDep, 0),
		tk(4, "mom", token.POSNoun, token.DepDobj, 3),
		tk(5, "tomorrow", token.POSNoun, token.DepDep, 3),
	}
	skip := TokensToSkip(doc)
	phrase := InfinitivePhrase(doc)

	title, ok := BuildTitleFromTokens(doc, skip, phrase)
	assert.True(t, ok)
	assert.Equal(t, "call mom", title)
}

func TestBuildTitleFromTokensEmptyPhrase(t *testing.T) {
	doc := token.Doc{
		tk(0, "meeting", token.POSNoun, token.DepRoot, 0),
	}
	_, ok := BuildTitleFromTokens(doc, make(IndexSet), make(IndexSet))
	assert.False(t, ok)
}

func TestBuildTitleFromTokensFullySkipped(t *testing.T) {
	doc := token.Doc{
		tk(0, "to", token.POSParticle, token.DepMark, 1),
		tk(1, "go", token.POSVerb, token.DepRoot, 1),
	}
	phrase := InfinitivePhrase(doc)
	skip := make(IndexSet)
	skip.add(0, 1)

	_, ok := BuildTitleFromTokens(doc, skip, phrase)
	assert.False(t, ok)
}
