// Package lookup resolves a user query to a dictionary entry: the remote API
// first, the built-in catalog second.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/metrics"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error)
}

type fallbackCatalog interface {
	Lookup(word string) (*domain.LookupResult, bool)
}

type lookupRecorder interface {
	ObserveLookup(outcome string, d time.Duration)
	RemoteFailed()
}

// Service is the lookup orchestrator.
type Service struct {
	log      *slog.Logger
	remote   dictionaryProvider
	fallback fallbackCatalog
	metrics  lookupRecorder
	now      func() time.Time
}

// NewService creates a lookup Service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	remote dictionaryProvider,
	fallback fallbackCatalog,
	metrics lookupRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "lookup"),
		remote:   remote,
		fallback: fallback,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Resolve normalizes raw and returns its entry.
//
// The remote provider is asked exactly once. Any remote failure (transport,
// non-2xx, bad payload, empty result) is logged and answered from the
// fallback catalog. Errors:
//   - domain.ErrEmptyQuery when the normalized input is blank (no network call)
//   - domain.ErrNotFound when neither source knows the word
func (s *Service) Resolve(ctx context.Context, raw string) (*domain.LookupResult, error) {
	start := s.now()

	word := domain.NormalizeQuery(raw)
	if word == "" {
		s.observe(metrics.OutcomeEmpty, start)
		return nil, domain.ErrEmptyQuery
	}

	result, err := s.remote.FetchEntry(ctx, word)
	if err == nil && result.Renderable() {
		s.observe(metrics.OutcomeRemote, start)
		return result, nil
	}

	if err == nil {
		err = errors.New("remote returned an unusable entry")
	}
	s.log.WarnContext(ctx, "remote lookup failed, using fallback",
		slog.String("word", word),
		slog.String("error", err.Error()),
	)
	if s.metrics != nil {
		s.metrics.RemoteFailed()
	}

	if entry, ok := s.fallback.Lookup(word); ok {
		s.log.DebugContext(ctx, "served from fallback catalog", slog.String("word", word))
		s.observe(metrics.OutcomeFallback, start)
		return entry, nil
	}

	s.observe(metrics.OutcomeNotFound, start)
	return nil, domain.ErrNotFound
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveLookup(outcome, s.now().Sub(start))
}
