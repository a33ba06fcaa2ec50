package middleware

import (
	"net/http"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/pkg/ctxutil"
)

type currentUser interface {
	CurrentUser() *domain.User
}

// Session returns middleware that attaches the signed-in username to the
// request context. It never rejects a request.
func Session(users currentUser) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u := users.CurrentUser(); u != nil {
				r = r.WithContext(ctxutil.WithUsername(r.Context(), u.Username))
			}
			next.ServeHTTP(w, r)
		})
	}
}
