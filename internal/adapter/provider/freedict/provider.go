package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/leximind/internal/domain"
)

// DefaultBaseURL is the public FreeDictionary endpoint.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider fetches dictionary data from the FreeDictionary API.
// Every call is a fresh request: no retries, no caching.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger, timeout time.Duration) *Provider {
	return NewProviderWithURL(DefaultBaseURL, logger, timeout)
}

// NewProviderWithURL creates a Provider with a custom base URL.
// A zero timeout leaves requests bounded only by the caller's context.
func NewProviderWithURL(baseURL string, logger *slog.Logger, timeout time.Duration) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches all entries for the given word.
//
// HTTP 404 (or an empty array) yields a NotFound LookupError, any other
// non-2xx status a Transient one. Transport and decoding failures are
// reported as Unexpected.
func (p *Provider) Lookup(ctx context.Context, word string) ([]domain.WordEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewLookupError(domain.LookupUnexpected, word, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewLookupError(domain.LookupUnexpected, word, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.log.DebugContext(ctx, "freedict word not found", slog.String("word", word))
		return nil, &domain.LookupError{Kind: domain.LookupNotFound, Word: word, Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.WarnContext(ctx, "freedict unexpected status", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, &domain.LookupError{Kind: domain.LookupTransient, Word: word, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewLookupError(domain.LookupUnexpected, word, fmt.Errorf("read body: %w", err))
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewLookupError(domain.LookupUnexpected, word, fmt.Errorf("decode json: %w", err))
	}

	if len(entries) == 0 {
		return nil, &domain.LookupError{Kind: domain.LookupNotFound, Word: word, Status: resp.StatusCode}
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result)),
	)

	return result, nil
}

// mapAPIResponse converts the API entries into domain entries, preserving
// their order. Empty optional strings become nil.
func mapAPIResponse(entries []apiEntry) []domain.WordEntry {
	result := make([]domain.WordEntry, 0, len(entries))

	for _, e := range entries {
		entry := domain.WordEntry{
			Word:       e.Word,
			Phonetic:   optional(e.Phonetic),
			Phonetics:  make([]domain.Phonetic, 0, len(e.Phonetics)),
			Meanings:   make([]domain.Meaning, 0, len(e.Meanings)),
			SourceURLs: e.SourceURLs,
		}

		for _, ph := range e.Phonetics {
			entry.Phonetics = append(entry.Phonetics, domain.Phonetic{
				Text:  optional(ph.Text),
				Audio: optional(ph.Audio),
			})
		}

		for _, m := range e.Meanings {
			meaning := domain.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
				Synonyms:     m.Synonyms,
				Antonyms:     m.Antonyms,
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, domain.Definition{
					Definition: d.Definition,
					Example:    optional(d.Example),
					Synonyms:   d.Synonyms,
					Antonyms:   d.Antonyms,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}

		if e.License != nil {
			entry.License = &domain.License{Name: e.License.Name, URL: e.License.URL}
		}

		result = append(result, entry)
	}

	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
