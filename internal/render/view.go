// Package render turns a LookupResult into a presentation-neutral view model.
// Presenters (terminal, web) only format what Build produced.
package render

import "github.com/heartmarshall/wordlookup/internal/domain"

// MaxRelated caps how many synonyms or antonyms a meaning displays.
const MaxRelated = 8

// View is everything a presenter needs to draw one result.
type View struct {
	Word          string        `json:"word"`
	Phonetic      string        `json:"phonetic"`
	HasAudio      bool          `json:"hasAudio"`
	AudioURL      string        `json:"audioUrl,omitempty"`
	Source        domain.Source `json:"source"`
	Meanings      []MeaningView `json:"meanings"`
	Etymology     string        `json:"etymology,omitempty"`
	ShowEtymology bool          `json:"showEtymology"`
}

// MeaningView is one part-of-speech block.
type MeaningView struct {
	PartOfSpeech  string           `json:"partOfSpeech"`
	Definitions   []DefinitionView `json:"definitions"`
	Synonyms      []string         `json:"synonyms"`
	SynonymsTotal int              `json:"synonymsTotal"`
	Antonyms      []string         `json:"antonyms"`
	AntonymsTotal int              `json:"antonymsTotal"`
}

// DefinitionView is a definition with its 1-based number within the meaning.
type DefinitionView struct {
	Number  int    `json:"number"`
	Text    string `json:"text"`
	Example string `json:"example,omitempty"`
}

// Build shapes r for display. It does not modify r.
func Build(r *domain.LookupResult) View {
	v := View{
		Word:     r.Word,
		Phonetic: phonetic(r),
		AudioURL: r.AudioURL(),
		Source:   r.Source,
		Meanings: make([]MeaningView, 0, len(r.Meanings)),
	}
	v.HasAudio = v.AudioURL != ""

	for _, m := range r.Meanings {
		mv := MeaningView{
			PartOfSpeech:  m.PartOfSpeech,
			Definitions:   make([]DefinitionView, 0, len(m.Definitions)),
			Synonyms:      capped(m.Synonyms),
			SynonymsTotal: len(m.Synonyms),
			Antonyms:      capped(m.Antonyms),
			AntonymsTotal: len(m.Antonyms),
		}
		for i, d := range m.Definitions {
			mv.Definitions = append(mv.Definitions, DefinitionView{
				Number:  i + 1,
				Text:    d.Text,
				Example: d.Example,
			})
		}
		v.Meanings = append(v.Meanings, mv)

		if !v.ShowEtymology && len(m.Etymology) > 0 && m.Etymology[0] != "" {
			v.Etymology = m.Etymology[0]
			v.ShowEtymology = true
		}
	}

	return v
}

func phonetic(r *domain.LookupResult) string {
	if r.Phonetic != "" {
		return r.Phonetic
	}
	if len(r.Phonetics) > 0 {
		return r.Phonetics[0].Text
	}
	return ""
}

// capped copies at most MaxRelated leading entries so the view never
// aliases the result's slices.
func capped(words []string) []string {
	n := min(len(words), MaxRelated)
	out := make([]string, n)
	copy(out, words[:n])
	return out
}
