package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlookup/internal/adapter/catalog"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/metrics"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockDictionaryProvider struct {
	FetchEntryFunc func(ctx context.Context, word string) (*domain.LookupResult, error)
	calls          []string
}

func (m *mockDictionaryProvider) FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error) {
	m.calls = append(m.calls, word)
	return m.FetchEntryFunc(ctx, word)
}

type mockRecorder struct {
	outcomes       []string
	remoteFailures int
}

func (m *mockRecorder) ObserveLookup(outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockRecorder) RemoteFailed() { m.remoteFailures++ }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestService(remote *mockDictionaryProvider, rec *mockRecorder) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, remote, catalog.Builtin(), rec)
}

func remoteEntry(word string) *domain.LookupResult {
	return &domain.LookupResult{
		Word: word,
		Meanings: []domain.Meaning{{
			PartOfSpeech: "noun",
			Definitions:  []domain.Definition{{Text: "remote definition"}},
		}},
		Source: domain.SourceRemote,
	}
}

func failingRemote(err error) *mockDictionaryProvider {
	return &mockDictionaryProvider{
		FetchEntryFunc: func(_ context.Context, _ string) (*domain.LookupResult, error) {
			return nil, err
		},
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestService_Resolve_EmptyQuery(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\t\n"} {
		remote := failingRemote(errors.New("must not be called"))
		rec := &mockRecorder{}
		svc := newTestService(remote, rec)

		got, err := svc.Resolve(context.Background(), input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
		assert.Empty(t, remote.calls, "input %q must not reach the network", input)
		assert.Equal(t, []string{metrics.OutcomeEmpty}, rec.outcomes)
	}
}

func TestService_Resolve_RemoteSuccess(t *testing.T) {
	t.Parallel()

	remote := &mockDictionaryProvider{
		FetchEntryFunc: func(_ context.Context, word string) (*domain.LookupResult, error) {
			return remoteEntry(word), nil
		},
	}
	rec := &mockRecorder{}
	svc := newTestService(remote, rec)

	got, err := svc.Resolve(context.Background(), "  Serendipity ")

	require.NoError(t, err)
	assert.Equal(t, "serendipity", got.Word)
	assert.Equal(t, domain.SourceRemote, got.Source)
	assert.Equal(t, []string{"serendipity"}, remote.calls)
	assert.Equal(t, []string{metrics.OutcomeRemote}, rec.outcomes)
	assert.Zero(t, rec.remoteFailures)
}

func TestService_Resolve_RemoteSuccessForCatalogWord(t *testing.T) {
	t.Parallel()

	remote := &mockDictionaryProvider{
		FetchEntryFunc: func(_ context.Context, word string) (*domain.LookupResult, error) {
			return remoteEntry(word), nil
		},
	}
	svc := newTestService(remote, &mockRecorder{})

	got, err := svc.Resolve(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, got.Source)
	assert.Equal(t, "remote definition", got.Meanings[0].Definitions[0].Text)
}

func TestService_Resolve_FallbackOnRemoteFailure(t *testing.T) {
	t.Parallel()

	failures := map[string]error{
		"not found":   fmt.Errorf("freedict: fetch entry: %w", domain.ErrNotFound),
		"server":      errors.New("freedict: unexpected status 500"),
		"transport":   errors.New("dial tcp: connection refused"),
		"cancelled":   context.Canceled,
		"bad payload": errors.New("freedict: decode response: invalid character"),
	}

	for name, remoteErr := range failures {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			remote := failingRemote(remoteErr)
			rec := &mockRecorder{}
			svc := newTestService(remote, rec)

			got, err := svc.Resolve(context.Background(), "HELLO")

			require.NoError(t, err)
			assert.Equal(t, "hello", got.Word)
			assert.Equal(t, domain.SourceFallback, got.Source)
			assert.NotEmpty(t, got.Meanings)
			assert.Len(t, remote.calls, 1, "no retry")
			assert.Equal(t, 1, rec.remoteFailures)
			assert.Equal(t, []string{metrics.OutcomeFallback}, rec.outcomes)
		})
	}
}

func TestService_Resolve_UnusableRemoteEntryFallsBack(t *testing.T) {
	t.Parallel()

	remote := &mockDictionaryProvider{
		FetchEntryFunc: func(_ context.Context, word string) (*domain.LookupResult, error) {
			return &domain.LookupResult{Word: word}, nil
		},
	}
	rec := &mockRecorder{}
	svc := newTestService(remote, rec)

	got, err := svc.Resolve(context.Background(), "world")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, got.Source)
	assert.Equal(t, 1, rec.remoteFailures)
}

func TestService_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	remote := failingRemote(errors.New("offline"))
	rec := &mockRecorder{}
	svc := newTestService(remote, rec)

	got, err := svc.Resolve(context.Background(), "xyzzyq")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{metrics.OutcomeNotFound}, rec.outcomes)
}

func TestService_Resolve_FallbackIsExactMatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingRemote(errors.New("offline")), &mockRecorder{})

	_, err := svc.Resolve(context.Background(), "hell")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Resolve(context.Background(), "hello world")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Resolve_FallbackResultIsNotShared(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingRemote(errors.New("offline")), &mockRecorder{})

	first, err := svc.Resolve(context.Background(), "computer")
	require.NoError(t, err)
	first.Meanings[0].Definitions[0].Text = "mutated"

	second, err := svc.Resolve(context.Background(), "computer")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Meanings[0].Definitions[0].Text)
}

func TestService_Resolve_NilMetrics(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, failingRemote(errors.New("offline")), catalog.Builtin(), nil)

	assert.NotPanics(t, func() {
		_, _ = svc.Resolve(context.Background(), "")
		_, _ = svc.Resolve(context.Background(), "hi")
		_, _ = svc.Resolve(context.Background(), "unknown")
	})
}
