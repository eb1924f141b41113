// Package app assembles the lookup pipeline from configuration and runs the
// local HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordlookup/internal/adapter/catalog"
	"github.com/heartmarshall/wordlookup/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordlookup/internal/adapter/provider/memo"
	"github.com/heartmarshall/wordlookup/internal/adapter/storage"
	"github.com/heartmarshall/wordlookup/internal/adapter/storage/file"
	"github.com/heartmarshall/wordlookup/internal/adapter/storage/postgres"
	"github.com/heartmarshall/wordlookup/internal/adapter/storage/redis"
	"github.com/heartmarshall/wordlookup/internal/adapter/storage/sqlite"
	"github.com/heartmarshall/wordlookup/internal/audio"
	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/controller"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/metrics"
	"github.com/heartmarshall/wordlookup/internal/service/history"
	"github.com/heartmarshall/wordlookup/internal/service/lookup"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*domain.LookupResult, error)
}

// App holds the wired components. Close releases the storage backend.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Store      storage.Store
	History    *history.Service
	Lookup     *lookup.Service
	Controller *controller.Controller
}

// Options override collaborators that are normally built from config.
type Options struct {
	// Remote replaces the FreeDictionary client (tests, offline use).
	Remote dictionaryProvider
	// Player replaces the configured audio player.
	Player audio.Player
}

// New builds every component from cfg. It does not load history; call
// Controller.Start for that.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	m := metrics.New()

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	remote := opts.Remote
	if remote == nil {
		remote = newRemote(cfg.Dictionary, logger)
	}

	player := opts.Player
	if player == nil {
		player, err = audio.New(cfg.Audio, logger)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("app: audio: %w", err)
		}
	}

	lookupSvc := lookup.NewService(logger, remote, catalog.Builtin(), m)
	historySvc := history.NewService(logger, store, cfg.History.Key, m)

	ctrl := controller.New(controller.Deps{
		Logger:  logger,
		Lookup:  lookupSvc,
		History: historySvc,
		Player:  player,
		Metrics: m,
	})

	logger.DebugContext(ctx, "application wired",
		slog.String("history_backend", cfg.History.Backend),
		slog.String("dictionary_url", cfg.Dictionary.BaseURL),
		slog.Duration("cache_ttl", cfg.Dictionary.CacheTTL),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Metrics:    m,
		Store:      store,
		History:    historySvc,
		Lookup:     lookupSvc,
		Controller: ctrl,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Store.Close()
}

// newRemote builds the FreeDictionary client, rate limited and memoized as
// configured.
func newRemote(cfg config.DictionaryConfig, logger *slog.Logger) dictionaryProvider {
	opts := []freedict.Option{freedict.WithTimeout(cfg.Timeout)}
	if cfg.RateLimitRPS > 0 {
		opts = append(opts, freedict.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	var remote dictionaryProvider = freedict.NewProviderWithURL(cfg.BaseURL, logger, opts...)
	if cfg.CacheTTL > 0 {
		remote = memo.New(remote, cfg.CacheTTL, logger)
	}
	return remote
}

// OpenStore opens the history storage backend selected by cfg.History.Backend.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.History.Backend {
	case config.BackendFile:
		return file.New(cfg.History.DataDir), nil

	case config.BackendRedis:
		s, err := redis.New(ctx, cfg.Redis, "wordlookup:")
		if err != nil {
			return nil, fmt.Errorf("app: open redis store: %w", err)
		}
		return s, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("app: open postgres store: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("app: migrate postgres store: %w", err)
		}
		return postgres.New(pool), nil

	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("app: open sqlite store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("app: unknown history backend %q", cfg.History.Backend)
	}
}
