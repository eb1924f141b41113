package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

func TestBuiltin_Words(t *testing.T) {
	t.Parallel()

	c := Builtin()
	assert.Equal(t,
		[]string{"computer", "dictionary", "hello", "hi", "language", "world"},
		c.Words(),
	)
}

func TestBuiltin_EntriesAreRenderable(t *testing.T) {
	t.Parallel()

	c := Builtin()
	for _, w := range c.Words() {
		r, ok := c.Lookup(w)
		require.True(t, ok, w)
		assert.Equal(t, w, r.Word)
		assert.Equal(t, domain.SourceFallback, r.Source)
		assert.True(t, r.Renderable(), w)
		assert.Empty(t, r.AudioURL(), "built-in entries carry no audio")
	}
}

func TestBuiltin_Hello(t *testing.T) {
	t.Parallel()

	r, ok := Builtin().Lookup("hello")
	require.True(t, ok)

	assert.Equal(t, "/həˈloʊ/", r.Phonetic)
	require.Len(t, r.Meanings, 2)
	assert.Equal(t, "exclamation", r.Meanings[0].PartOfSpeech)
	assert.Equal(t, "Hello there, Katie!", r.Meanings[0].Definitions[0].Example)
	assert.Equal(t, []string{"hi", "hey", "greetings"}, r.Meanings[0].Synonyms)
	assert.Equal(t, []string{"goodbye", "farewell"}, r.Meanings[0].Antonyms)
	assert.Equal(t, "An utterance of 'hello'; a greeting.", r.Meanings[1].Definitions[0].Text)
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	_, ok := Builtin().Lookup("Hello")
	assert.False(t, ok)
}

func TestLookup_Miss(t *testing.T) {
	t.Parallel()

	_, ok := Builtin().Lookup("zyzzyva")
	assert.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Builtin()
	first, _ := c.Lookup("world")
	first.Meanings[0].Synonyms[0] = "mutated"

	second, _ := c.Lookup("world")
	assert.Equal(t, "earth", second.Meanings[0].Synonyms[0])
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "{{{"},
		{"uppercase key", "Cat:\n  word: cat\n  meanings:\n    - partOfSpeech: noun\n      definitions:\n        - definition: x\n"},
		{"no meanings", "cat:\n  word: cat\n"},
		{"no definitions", "cat:\n  word: cat\n  meanings:\n    - partOfSpeech: noun\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_Etymology(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`cat:
  word: cat
  meanings:
    - partOfSpeech: noun
      definitions:
        - definition: A small feline.
      etymology: ["From Old English catt."]
`))
	require.NoError(t, err)

	r, ok := c.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, []string{"From Old English catt."}, r.Meanings[0].Etymology)
}
