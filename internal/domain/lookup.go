package domain

// Source identifies where a LookupResult came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// LookupResult is a normalized dictionary entry. It lives for one
// display cycle only.
type LookupResult struct {
	Word      string
	Phonetic  string
	Phonetics []PhoneticVariant
	Meanings  []Meaning
	Source    Source
}

// PhoneticVariant is one pronunciation. AudioURL may be empty.
type PhoneticVariant struct {
	Text     string
	AudioURL string
}

// Meaning groups definitions that share a part of speech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
	Synonyms     []string
	Antonyms     []string
	Etymology    []string
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Text    string
	Example string
}

// Renderable reports whether the result satisfies the invariants the
// renderer relies on: a headword and at least one meaning.
func (r *LookupResult) Renderable() bool {
	return r != nil && r.Word != "" && len(r.Meanings) > 0
}

// AudioURL returns the first non-empty audio locator across phonetic
// variants, or "" if none carries audio.
func (r *LookupResult) AudioURL() string {
	for _, p := range r.Phonetics {
		if p.AudioURL != "" {
			return p.AudioURL
		}
	}
	return ""
}

// Clone returns a deep copy so callers can hand results out without
// sharing the catalog's backing arrays.
func (r *LookupResult) Clone() *LookupResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Phonetics = append([]PhoneticVariant(nil), r.Phonetics...)
	out.Meanings = make([]Meaning, len(r.Meanings))
	for i, m := range r.Meanings {
		out.Meanings[i] = Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  append([]Definition(nil), m.Definitions...),
			Synonyms:     append([]string(nil), m.Synonyms...),
			Antonyms:     append([]string(nil), m.Antonyms...),
			Etymology:    append([]string(nil), m.Etymology...),
		}
	}
	return &out
}
