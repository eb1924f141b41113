package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/render"
	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
	"github.com/heartmarshall/wordlookup/internal/transport/rest"
	"github.com/heartmarshall/wordlookup/internal/transport/web"
)

// Handler returns the HTTP handler of the local UI with all routes and
// middleware.
func (a *App) Handler() http.Handler {
	pages := web.NewHandler(a.Controller, a.Logger)
	api := rest.NewLookupHandler(a.Controller, a.Logger)
	health := rest.NewHealthHandler(a.Store, a.Config.History.Backend, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pages.Index)
	mux.HandleFunc("GET /lookup", pages.Lookup)
	mux.HandleFunc("POST /audio", pages.Audio)

	mux.HandleFunc("GET /api/lookup", api.Lookup)
	mux.HandleFunc("GET /api/history", api.History)
	mux.HandleFunc("DELETE /api/history", api.ClearHistory)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", a.Metrics.Handler())

	return middleware.Chain(
		middleware.Recovery(a.Logger),
		middleware.RequestID(),
		middleware.Logger(a.Logger),
		middleware.Metrics(a.Metrics),
	)(mux)
}

// Serve loads history and serves the local UI on ln until ctx is cancelled,
// then shuts down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.Controller.Start(ctx, &render.Snapshot{})

	cfg := a.Config.Server
	srv := &http.Server{
		Handler:      a.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		a.Logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancelShutdown()
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	a.Logger.Info("server listening",
		slog.String("addr", "http://"+ln.Addr().String()),
		slog.String("version", BuildVersion()),
	)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-shutdownDone
		return err
	}

	if err := <-shutdownDone; err != nil {
		return err
	}
	a.Controller.WaitAudio()
	a.Logger.Info("server stopped")
	return nil
}
