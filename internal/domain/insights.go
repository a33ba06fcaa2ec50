package domain

import (
	"fmt"
	"strings"
)

// InsightExampleCount is the exact number of example pairs in AIInsights.
const InsightExampleCount = 5

// AIInsights is the AI-generated learning aid for a word. It is either a
// genuine model result or FallbackInsights; there is no partial state.
type AIInsights struct {
	HindiMeaning string        `json:"hindiMeaning"`
	Examples     []ExamplePair `json:"examples"`
	Mnemonic     string        `json:"mnemonic"`
	Etymology    string        `json:"etymology"`
	UsageTip     string        `json:"usageTip"`
}

// ExamplePair is an English sentence and its Hindi translation.
type ExamplePair struct {
	English string `json:"english"`
	Hindi   string `json:"hindi"`
}

// Validate checks the insight against the response schema: every field is
// required and there are exactly InsightExampleCount examples.
func (a *AIInsights) Validate() error {
	var errs []FieldError
	required := []struct{ field, value string }{
		{"hindiMeaning", a.HindiMeaning},
		{"mnemonic", a.Mnemonic},
		{"etymology", a.Etymology},
		{"usageTip", a.UsageTip},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: "required"})
		}
	}

	if len(a.Examples) != InsightExampleCount {
		errs = append(errs, FieldError{
			Field:   "examples",
			Message: fmt.Sprintf("expected %d items, got %d", InsightExampleCount, len(a.Examples)),
		})
	}
	for i, ex := range a.Examples {
		if strings.TrimSpace(ex.English) == "" || strings.TrimSpace(ex.Hindi) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("examples[%d]", i),
				Message: "english and hindi are required",
			})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// FallbackInsights returns the fixed, word-agnostic value substituted when the
// AI service cannot produce insights. Each call returns a fresh copy.
func FallbackInsights() AIInsights {
	return AIInsights{
		HindiMeaning: "अनुवाद उपलब्ध नहीं है",
		Examples: []ExamplePair{
			{English: "Knowledge is power.", Hindi: "ज्ञान ही शक्ति है।"},
			{English: "Try to use this word in a sentence.", Hindi: "इस शब्द को एक वाक्य में प्रयोग करने का प्रयास करें।"},
			{English: "Practice makes perfect.", Hindi: "अभ्यास ही मनुष्य को पूर्ण बनाता है।"},
			{English: "Learning never stops.", Hindi: "सीखना कभी नहीं रुकता।"},
			{English: "Keep searching for new words.", Hindi: "नए शब्दों की खोज जारी रखें।"},
		},
		Mnemonic:  "Learn by repetition!",
		Etymology: "Check dictionary for origins.",
		UsageTip:  "Use it in your next conversation.",
	}
}
