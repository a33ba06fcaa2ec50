package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leximind/internal/transport/middleware"
	"github.com/heartmarshall/leximind/internal/transport/rest"
)

// limiterCleanupInterval is how often idle per-client limiters are evicted.
const limiterCleanupInterval = time.Minute

// Handler returns the HTTP API with the full middleware stack. A nil limiter
// disables rate limiting.
func (a *App) Handler(limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	rest.NewHandler(a.Logger, a.Lookup, a.Sessions, a.Sessions, a.Auth).Register(mux)
	rest.NewHealthHandler(a.Storage, a.Config.Storage.Driver, BuildVersion()).Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

	return middleware.APIStack(a.Logger, a.Sessions, a.Config.CORS, limiter)(mux)
}

// Serve listens on the configured address until ctx is done, then shuts the
// server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("app.Serve: listen %s: %w", addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	var limiter *middleware.RateLimiter
	if rl := a.Config.RateLimit; rl.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(rl.RequestsPerMinute, rl.Burst, limiterCleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Handler:      a.Handler(limiter),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("http server listening",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", BuildVersion()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.Serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app.Serve: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
