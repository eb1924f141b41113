// Package memo memoizes successful remote dictionary lookups in memory.
package memo

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error)
}

// Provider wraps a dictionaryProvider and serves repeated words from memory.
// Errors are never cached, so a failed word is retried on the next lookup.
type Provider struct {
	next  dictionaryProvider
	cache *gocache.Cache
	log   *slog.Logger
}

// New creates a memoizing Provider. ttl must be positive.
func New(next dictionaryProvider, ttl time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
		log:   logger.With("adapter", "memo"),
	}
}

// FetchEntry returns a copy of the memoized result, or delegates and
// memoizes on success.
func (p *Provider) FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error) {
	if v, found := p.cache.Get(word); found {
		p.log.DebugContext(ctx, "memo hit", slog.String("word", word))
		return v.(*domain.LookupResult).Clone(), nil
	}

	result, err := p.next.FetchEntry(ctx, word)
	if err != nil {
		return nil, err
	}

	p.cache.SetDefault(word, result.Clone())
	return result, nil
}

// Len reports the number of memoized words, including expired ones not yet
// evicted.
func (p *Provider) Len() int {
	return p.cache.ItemCount()
}

// Flush drops all memoized results.
func (p *Provider) Flush() {
	p.cache.Flush()
}
