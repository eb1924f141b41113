// Package history keeps the bounded, most-recent-first list of searched
// words and persists it as a JSON array under a single storage key.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/adapter/storage"
	"github.com/heartmarshall/wordlookup/internal/domain"
)

// MaxEntries is the maximum length of the recent-search list.
const MaxEntries = 10

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type writeFailureRecorder interface {
	HistoryWriteFailed()
}

// Service is the recent-search store. Persistence is best effort: storage
// failures are logged and never returned to callers.
type Service struct {
	log     *slog.Logger
	store   kvStore
	key     string
	metrics writeFailureRecorder

	mu    sync.Mutex
	words []string
}

// NewService creates a history Service. metrics may be nil.
func NewService(logger *slog.Logger, store kvStore, key string, metrics writeFailureRecorder) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		store:   store,
		key:     key,
		metrics: metrics,
		words:   []string{},
	}
}

// Load reads the persisted list into memory and returns a copy of it.
// A missing key, a storage error or unparsable content yields an empty list.
func (s *Service) Load(ctx context.Context) []string {
	words := s.read(ctx)

	s.mu.Lock()
	s.words = words
	s.mu.Unlock()

	return slices.Clone(words)
}

func (s *Service) read(ctx context.Context) []string {
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []string{}
	}
	if err != nil {
		s.log.WarnContext(ctx, "history load failed", slog.String("error", err.Error()))
		return []string{}
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.WarnContext(ctx, "history content unparsable, starting empty", slog.String("error", err.Error()))
		return []string{}
	}

	// Sanitize whatever was stored: normalized, unique, bounded.
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = domain.NormalizeQuery(w)
		if w == "" || slices.Contains(words, w) {
			continue
		}
		words = append(words, w)
		if len(words) == MaxEntries {
			break
		}
	}
	return words
}

// Record moves word to the front of the list (inserting it if absent),
// truncates to MaxEntries and persists the whole list.
func (s *Service) Record(ctx context.Context, word string) {
	word = domain.NormalizeQuery(word)
	if word == "" {
		return
	}

	s.mu.Lock()
	next := make([]string, 0, MaxEntries)
	next = append(next, word)
	for _, w := range s.words {
		if w == word {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, w)
	}
	s.words = next
	snapshot := slices.Clone(next)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Clear empties the list and persists the empty list.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.words = []string{}
	s.mu.Unlock()

	s.persist(ctx, []string{})
}

// List returns a copy of the in-memory list, most recent first.
func (s *Service) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.words)
}

func (s *Service) persist(ctx context.Context, words []string) {
	data, err := json.Marshal(words)
	if err != nil {
		s.log.ErrorContext(ctx, "history encode failed", slog.String("error", err.Error()))
		return
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		s.log.WarnContext(ctx, "could not save recent searches", slog.String("error", err.Error()))
		if s.metrics != nil {
			s.metrics.HistoryWriteFailed()
		}
	}
}
