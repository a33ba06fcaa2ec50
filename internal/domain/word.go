package domain

// WordEntry is one headword record returned by the dictionary service.
type WordEntry struct {
	Word       string     `json:"word"`
	Phonetic   *string    `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	License    *License   `json:"license,omitempty"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is a transcription and/or an audio recording.
type Phonetic struct {
	Text  *string `json:"text,omitempty"`
	Audio *string `json:"audio,omitempty"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Definition string   `json:"definition"`
	Example    *string  `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// License is the content license reported by the dictionary service.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MaxDisplayedDefinitions is how many definitions per meaning a word card shows.
const MaxDisplayedDefinitions = 3

// AudioURL returns the first non-empty audio URL among the phonetics.
func (e *WordEntry) AudioURL() (string, bool) {
	for _, p := range e.Phonetics {
		if p.Audio != nil && *p.Audio != "" {
			return *p.Audio, true
		}
	}
	return "", false
}

// DisplayPhonetic returns the top-level phonetic, falling back to the first
// phonetic that has a transcription.
func (e *WordEntry) DisplayPhonetic() string {
	if e.Phonetic != nil && *e.Phonetic != "" {
		return *e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != nil && *p.Text != "" {
			return *p.Text
		}
	}
	return ""
}

// DisplayedDefinitions returns at most MaxDisplayedDefinitions definitions.
func (m *Meaning) DisplayedDefinitions() []Definition {
	if len(m.Definitions) <= MaxDisplayedDefinitions {
		return m.Definitions
	}
	return m.Definitions[:MaxDisplayedDefinitions]
}
