package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/leximind/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// APIStack is the middleware order used by the REST API. Session sits outside
// Logger so the request log carries the username. A nil limiter disables
// rate limiting.
func APIStack(logger *slog.Logger, users currentUser, cors config.CORSConfig, limiter *RateLimiter) Middleware {
	var limit Middleware
	if limiter != nil {
		limit = limiter.Middleware()
	}
	return Chain(
		Recovery(logger),
		RequestID(),
		Session(users),
		Logger(logger),
		CORS(cors),
		limit,
	)
}
