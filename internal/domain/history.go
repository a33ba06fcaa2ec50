package domain

import "time"

// MaxHistoryItems bounds the search history.
const MaxHistoryItems = 10

// HistoryItem is one previously searched word.
// Timestamp is the capture time in Unix milliseconds.
type HistoryItem struct {
	Word      string `json:"word"`
	Timestamp int64  `json:"timestamp"`
}

// PushHistory returns a new history with word at the front. Any earlier item
// for the same word (case-insensitive) is removed and the result is truncated
// to MaxHistoryItems. The input slice is not modified.
func PushHistory(items []HistoryItem, word string, now time.Time) []HistoryItem {
	key := NormalizeText(word)

	out := make([]HistoryItem, 0, min(len(items)+1, MaxHistoryItems))
	out = append(out, HistoryItem{Word: word, Timestamp: now.UnixMilli()})
	for _, it := range items {
		if len(out) == MaxHistoryItems {
			break
		}
		if NormalizeText(it.Word) == key {
			continue
		}
		out = append(out, it)
	}
	return out
}
