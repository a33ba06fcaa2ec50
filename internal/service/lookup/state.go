package lookup

import (
	"slices"

	"github.com/heartmarshall/leximind/internal/domain"
)

// State is the display state of the most recent search.
//
// Terminal states are either Error set, or Entry set with Insights set or
// AILoading still true.
type State struct {
	Generation uint64             `json:"generation"`
	Query      string             `json:"query"`
	Entry      *domain.WordEntry  `json:"entry"`
	Insights   *domain.AIInsights `json:"insights"`
	Error      string             `json:"error,omitempty"`
	Loading    bool               `json:"loading"`
	AILoading  bool               `json:"aiLoading"`
}

// clone returns a copy that shares nothing mutable with s.
func (s State) clone() State {
	out := s
	if s.Entry != nil {
		e := cloneEntry(*s.Entry)
		out.Entry = &e
	}
	if s.Insights != nil {
		ins := *s.Insights
		ins.Examples = slices.Clone(s.Insights.Examples)
		out.Insights = &ins
	}
	return out
}

func cloneEntry(e domain.WordEntry) domain.WordEntry {
	e.Phonetics = slices.Clone(e.Phonetics)
	e.SourceURLs = slices.Clone(e.SourceURLs)
	meanings := make([]domain.Meaning, len(e.Meanings))
	for i, m := range e.Meanings {
		m.Definitions = slices.Clone(m.Definitions)
		m.Synonyms = slices.Clone(m.Synonyms)
		m.Antonyms = slices.Clone(m.Antonyms)
		meanings[i] = m
	}
	e.Meanings = meanings
	return e
}
