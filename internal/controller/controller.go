// Package controller dispatches user intents (search, word-token clicks,
// audio requests) to the lookup pipeline and drives a Presenter.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/wordlookup/internal/audio"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/render"
)

// User-facing messages.
const (
	MsgEmptyQuery = "Please enter a word to search."
	MsgNotFound   = "Please check the spelling and try again."
)

// ErrBusy is returned by Search when another lookup is still in flight.
var ErrBusy = errors.New("controller: lookup already in progress")

// playTimeout bounds one detached playback.
const playTimeout = 30 * time.Second

var suggestions = []string{"hello", "world", "dictionary", "language", "computer"}

// Presenter is a display surface. Exactly one of the idle, loading, error
// and results states is visible at a time; history is shown alongside.
type Presenter interface {
	ShowIdle()
	ShowLoading()
	ShowError(msg string)
	ShowResults(v render.View)
	ShowHistory(words []string)
}

type resolver interface {
	Resolve(ctx context.Context, raw string) (*domain.LookupResult, error)
}

type historyStore interface {
	Load(ctx context.Context) []string
	Record(ctx context.Context, word string)
	Clear(ctx context.Context)
	List() []string
}

type audioFailureRecorder interface {
	AudioFailed()
}

// Deps are the collaborators of a Controller. Player and Metrics may be nil.
type Deps struct {
	Logger  *slog.Logger
	Lookup  resolver
	History historyStore
	Player  audio.Player
	Metrics audioFailureRecorder
}

// Controller owns the currently bound audio source and serializes lookups:
// a search arriving while another is running is rejected, so a slow
// response can never overwrite a newer one.
type Controller struct {
	log     *slog.Logger
	lookup  resolver
	history historyStore
	player  audio.Player
	metrics audioFailureRecorder
	intn    func(n int) int

	sem *semaphore.Weighted

	mu       sync.Mutex
	audioURL string

	playing sync.WaitGroup
}

// New creates a Controller.
func New(deps Deps) *Controller {
	player := deps.Player
	if player == nil {
		player = audio.Noop{}
	}
	return &Controller{
		log:     deps.Logger.With("component", "controller"),
		lookup:  deps.Lookup,
		history: deps.History,
		player:  player,
		metrics: deps.Metrics,
		intn:    rand.IntN,
		sem:     semaphore.NewWeighted(1),
	}
}

// Start loads the persisted history and shows the idle screen.
func (c *Controller) Start(ctx context.Context, p Presenter) {
	words := c.history.Load(ctx)
	p.ShowIdle()
	p.ShowHistory(words)
}

// Search runs the full pipeline for input. It returns domain.ErrEmptyQuery or
// domain.ErrNotFound after showing the matching message, or ErrBusy without
// touching p when a lookup is already running.
func (c *Controller) Search(ctx context.Context, p Presenter, input string) error {
	if !c.sem.TryAcquire(1) {
		return ErrBusy
	}
	defer c.sem.Release(1)

	query := domain.NormalizeQuery(input)
	if query != "" {
		p.ShowLoading()
	}

	result, err := c.lookup.Resolve(ctx, query)
	if err != nil {
		c.bindAudio("")
		if errors.Is(err, domain.ErrEmptyQuery) {
			p.ShowError(MsgEmptyQuery)
		} else {
			p.ShowError(MsgNotFound)
		}
		// The presenter may drop numbered tokens on error; redraw the list so
		// history entries stay selectable.
		p.ShowHistory(c.history.List())
		return err
	}

	view := render.Build(result)
	c.bindAudio(view.AudioURL)
	p.ShowResults(view)

	c.history.Record(ctx, query)
	p.ShowHistory(c.history.List())

	c.log.InfoContext(ctx, "lookup completed",
		slog.String("query", query),
		slog.String("word", result.Word),
		slog.String("source", string(result.Source)),
	)
	return nil
}

// SelectWord handles a click on a synonym, antonym or history token.
func (c *Controller) SelectWord(ctx context.Context, p Presenter, token string) error {
	return c.Search(ctx, p, token)
}

// PlayAudio starts playback of the bound recording on its own goroutine and
// reports whether anything was started. Failures are logged only.
func (c *Controller) PlayAudio(ctx context.Context) bool {
	url := c.AudioURL()
	if url == "" {
		return false
	}

	playCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), playTimeout)
	c.playing.Add(1)
	go func() {
		defer c.playing.Done()
		defer cancel()
		if err := c.player.Play(playCtx, url); err != nil {
			c.log.WarnContext(playCtx, "audio playback failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
			if c.metrics != nil {
				c.metrics.AudioFailed()
			}
		}
	}()
	return true
}

// WaitAudio blocks until every started playback has finished.
func (c *Controller) WaitAudio() {
	c.playing.Wait()
}

// AudioURL returns the recording bound by the last successful search.
func (c *Controller) AudioURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.audioURL
}

// History returns the recent searches, most recent first.
func (c *Controller) History() []string {
	return c.history.List()
}

// ClearHistory empties the recent searches and shows the empty list.
func (c *Controller) ClearHistory(ctx context.Context, p Presenter) {
	c.history.Clear(ctx)
	p.ShowHistory(c.history.List())
}

// Suggestion returns a sample word for the search placeholder.
func (c *Controller) Suggestion() string {
	return suggestions[c.intn(len(suggestions))]
}

// Placeholder formats Suggestion as input hint text.
func (c *Controller) Placeholder() string {
	return fmt.Sprintf("Try searching for %q...", c.Suggestion())
}

func (c *Controller) bindAudio(url string) {
	c.mu.Lock()
	c.audioURL = url
	c.mu.Unlock()
}
