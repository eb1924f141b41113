package freedict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout = 10 * time.Second

	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 4 << 20
)

// ErrEmptyEntry is returned when the API answers 2xx but the first entry
// carries no headword or no usable meanings.
var ErrEmptyEntry = errors.New("freedict: empty entry")

// Provider fetches dictionary data from the FreeDictionary API.
// Exactly one request is made per FetchEntry; there is no retry.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option customizes a Provider.
type Option func(*Provider)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.httpClient.Timeout = d
		}
	}
}

// WithRateLimit throttles outbound requests to rps with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(p *Provider) {
		if rps <= 0 {
			p.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		if c != nil {
			p.httpClient = c
		}
	}
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger, opts ...Option) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger, opts...)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing
// and self-hosted mirrors).
func NewProviderWithURL(baseURL string, logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("adapter", "freedict"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchEntry fetches the first dictionary entry for the given word.
// Any failure (transport, non-2xx, malformed body, empty array) is
// returned as an error; a 404 wraps domain.ErrNotFound.
func (p *Provider) FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("freedict: rate limit: %w", err)
		}
	}

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("freedict: %q: %w", word, domain.ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyEntry
	}

	result := mapAPIEntry(entries[0])
	if !result.Renderable() {
		return nil, ErrEmptyEntry
	}

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(entries)),
		slog.Int("meanings", len(result.Meanings)),
		slog.Int("phonetics", len(result.Phonetics)),
	)

	return result, nil
}

// mapAPIEntry converts one API entry into a domain.LookupResult.
// Meanings without any non-empty definition are dropped so that every
// meaning handed to the renderer has at least one definition.
func mapAPIEntry(e apiEntry) *domain.LookupResult {
	result := &domain.LookupResult{
		Word:      e.Word,
		Phonetic:  e.Phonetic,
		Phonetics: make([]domain.PhoneticVariant, 0, len(e.Phonetics)),
		Meanings:  make([]domain.Meaning, 0, len(e.Meanings)),
		Source:    domain.SourceRemote,
	}

	for _, ph := range e.Phonetics {
		if ph.Text == "" && ph.Audio == "" {
			continue
		}
		result.Phonetics = append(result.Phonetics, domain.PhoneticVariant{
			Text:     ph.Text,
			AudioURL: ph.Audio,
		})
	}

	for _, m := range e.Meanings {
		defs := make([]domain.Definition, 0, len(m.Definitions))
		for _, d := range m.Definitions {
			if d.Definition == "" {
				continue
			}
			defs = append(defs, domain.Definition{Text: d.Definition, Example: d.Example})
		}
		if len(defs) == 0 {
			continue
		}
		result.Meanings = append(result.Meanings, domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  defs,
			Synonyms:     nonNil(m.Synonyms),
			Antonyms:     nonNil(m.Antonyms),
			Etymology:    m.Etymology,
		})
	}

	return result
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
