package freedict

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology/homograph).
type apiEntry struct {
	Word       string        `json:"word"`
	Phonetic   string        `json:"phonetic"`
	Phonetics  []apiPhonetic `json:"phonetics"`
	Meanings   []apiMeaning  `json:"meanings"`
	License    *apiLicense   `json:"license"`
	SourceURLs []string      `json:"sourceUrls"`
}

// apiPhonetic represents phonetic/pronunciation data from the API.
type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

type apiLicense struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
