package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i+1)
	}
	return out
}

func baseResult() *domain.LookupResult {
	return &domain.LookupResult{
		Word: "test",
		Meanings: []domain.Meaning{{
			PartOfSpeech: "noun",
			Definitions: []domain.Definition{
				{Text: "first"},
				{Text: "second", Example: "an example"},
			},
		}},
		Source: domain.SourceRemote,
	}
}

func TestBuild_PhoneticPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		phonetic  string
		phonetics []domain.PhoneticVariant
		want      string
	}{
		{"top level wins", "/top/", []domain.PhoneticVariant{{Text: "/variant/"}}, "/top/"},
		{"first variant", "", []domain.PhoneticVariant{{Text: "/a/"}, {Text: "/b/"}}, "/a/"},
		{"blank", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := baseResult()
			r.Phonetic = tt.phonetic
			r.Phonetics = tt.phonetics
			assert.Equal(t, tt.want, Build(r).Phonetic)
		})
	}
}

func TestBuild_Audio(t *testing.T) {
	t.Parallel()

	r := baseResult()
	r.Phonetics = []domain.PhoneticVariant{
		{Text: "/a/"},
		{Text: "/b/", AudioURL: "https://audio/b.mp3"},
		{Text: "/c/", AudioURL: "https://audio/c.mp3"},
	}
	v := Build(r)
	assert.True(t, v.HasAudio)
	assert.Equal(t, "https://audio/b.mp3", v.AudioURL)

	r.Phonetics = []domain.PhoneticVariant{{Text: "/a/"}}
	v = Build(r)
	assert.False(t, v.HasAudio)
	assert.Empty(t, v.AudioURL)
}

func TestBuild_DefinitionsNumberedPerMeaning(t *testing.T) {
	t.Parallel()

	r := baseResult()
	r.Meanings = append(r.Meanings, domain.Meaning{
		PartOfSpeech: "verb",
		Definitions:  []domain.Definition{{Text: "to check"}},
	})

	v := Build(r)

	require.Len(t, v.Meanings, 2)
	assert.Equal(t, "noun", v.Meanings[0].PartOfSpeech)
	assert.Equal(t, []DefinitionView{
		{Number: 1, Text: "first"},
		{Number: 2, Text: "second", Example: "an example"},
	}, v.Meanings[0].Definitions)
	assert.Equal(t, "verb", v.Meanings[1].PartOfSpeech)
	assert.Equal(t, 1, v.Meanings[1].Definitions[0].Number)
}

func TestBuild_RelatedCappedSourceRetained(t *testing.T) {
	t.Parallel()

	r := baseResult()
	r.Meanings[0].Synonyms = words(12)
	r.Meanings[0].Antonyms = words(3)

	v := Build(r)

	assert.Len(t, v.Meanings[0].Synonyms, MaxRelated)
	assert.Equal(t, words(8), v.Meanings[0].Synonyms)
	assert.Equal(t, 12, v.Meanings[0].SynonymsTotal)
	assert.Len(t, r.Meanings[0].Synonyms, 12)

	assert.Equal(t, words(3), v.Meanings[0].Antonyms)
	assert.Equal(t, 3, v.Meanings[0].AntonymsTotal)

	v.Meanings[0].Synonyms[0] = "changed"
	assert.Equal(t, "w1", r.Meanings[0].Synonyms[0])
}

func TestBuild_EmptyRelatedIsNonNil(t *testing.T) {
	t.Parallel()

	v := Build(baseResult())
	assert.NotNil(t, v.Meanings[0].Synonyms)
	assert.NotNil(t, v.Meanings[0].Antonyms)
	assert.Empty(t, v.Meanings[0].Synonyms)
}

func TestBuild_Etymology(t *testing.T) {
	t.Parallel()

	r := baseResult()
	v := Build(r)
	assert.False(t, v.ShowEtymology)
	assert.Empty(t, v.Etymology)

	r.Meanings = append(r.Meanings,
		domain.Meaning{PartOfSpeech: "verb", Definitions: []domain.Definition{{Text: "x"}}, Etymology: []string{"origin text"}},
		domain.Meaning{PartOfSpeech: "adj", Definitions: []domain.Definition{{Text: "y"}}, Etymology: []string{"later origin"}},
	)
	v = Build(r)
	assert.True(t, v.ShowEtymology)
	assert.Equal(t, "origin text", v.Etymology)
}

func TestBuild_EtymologySkipsBlankEntries(t *testing.T) {
	t.Parallel()

	r := baseResult()
	r.Meanings[0].Etymology = []string{""}
	r.Meanings = append(r.Meanings, domain.Meaning{
		PartOfSpeech: "verb",
		Definitions:  []domain.Definition{{Text: "x"}},
		Etymology:    []string{"real origin"},
	})

	v := Build(r)
	assert.Equal(t, "real origin", v.Etymology)
}

func TestBuild_CarriesSource(t *testing.T) {
	t.Parallel()

	r := baseResult()
	r.Source = domain.SourceFallback
	assert.Equal(t, domain.SourceFallback, Build(r).Source)
}
