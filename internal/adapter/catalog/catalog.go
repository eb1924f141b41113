// Package catalog provides the built-in fallback dictionary used when the
// remote API cannot answer.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

//go:embed catalog.yaml
var builtinYAML []byte

// Catalog is an immutable word → result table. Safe for concurrent use.
type Catalog struct {
	entries map[string]*domain.LookupResult
}

type yamlEntry struct {
	Word      string `yaml:"word"`
	Phonetic  string `yaml:"phonetic"`
	Phonetics []struct {
		Text  string `yaml:"text"`
		Audio string `yaml:"audio"`
	} `yaml:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `yaml:"partOfSpeech"`
		Definitions  []struct {
			Definition string `yaml:"definition"`
			Example    string `yaml:"example"`
		} `yaml:"definitions"`
		Synonyms  []string `yaml:"synonyms"`
		Antonyms  []string `yaml:"antonyms"`
		Etymology []string `yaml:"etymology"`
	} `yaml:"meanings"`
}

// Builtin returns the catalog compiled into the binary.
// It panics if the embedded data is invalid, which is a build defect.
func Builtin() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data: %v", err))
	}
	return c
}

// Parse builds a Catalog from YAML. Every entry must have a headword and at
// least one meaning with at least one definition; keys must be lowercase.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]yamlEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}

	entries := make(map[string]*domain.LookupResult, len(raw))
	for key, e := range raw {
		if key != domain.NormalizeQuery(key) {
			return nil, fmt.Errorf("catalog: key %q is not normalized", key)
		}
		r := toDomain(e)
		if !r.Renderable() {
			return nil, fmt.Errorf("catalog: entry %q has no word or meanings", key)
		}
		for i, m := range r.Meanings {
			if len(m.Definitions) == 0 {
				return nil, fmt.Errorf("catalog: entry %q meaning %d has no definitions", key, i)
			}
		}
		entries[key] = r
	}

	return &Catalog{entries: entries}, nil
}

// Lookup returns a copy of the entry for the exact (already normalized) key.
func (c *Catalog) Lookup(word string) (*domain.LookupResult, bool) {
	r, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// Words lists catalog keys in alphabetical order.
func (c *Catalog) Words() []string {
	words := make([]string, 0, len(c.entries))
	for w := range c.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func toDomain(e yamlEntry) *domain.LookupResult {
	r := &domain.LookupResult{
		Word:     e.Word,
		Phonetic: e.Phonetic,
		Source:   domain.SourceFallback,
	}
	for _, p := range e.Phonetics {
		r.Phonetics = append(r.Phonetics, domain.PhoneticVariant{Text: p.Text, AudioURL: p.Audio})
	}
	for _, m := range e.Meanings {
		dm := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Synonyms:     append([]string{}, m.Synonyms...),
			Antonyms:     append([]string{}, m.Antonyms...),
			Etymology:    m.Etymology,
		}
		for _, d := range m.Definitions {
			dm.Definitions = append(dm.Definitions, domain.Definition{Text: d.Definition, Example: d.Example})
		}
		r.Meanings = append(r.Meanings, dm)
	}
	return r
}
