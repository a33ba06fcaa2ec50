package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/leximind/internal/config"
	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/pkg/ctxutil"
)

type fixedUser struct{ user *domain.User }

func (f fixedUser) CurrentUser() *domain.User { return f.user }

func TestSession_AttachesUsername(t *testing.T) {
	var got string
	var ok bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = ctxutil.UsernameFromCtx(r.Context())
	})

	users := fixedUser{user: &domain.User{Username: "ada", Email: "ada@example.com"}}
	Session(users)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.Equal(t, "ada", got)
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := ctxutil.UsernameFromCtx(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Session(fixedUser{})(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIStack_LogsUsernameAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	users := fixedUser{user: &domain.User{Username: "grace"}}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	APIStack(logger, users, config.CORSConfig{AllowedOrigins: "*"}, nil)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	out := buf.String()
	assert.True(t, strings.Contains(out, `"username":"grace"`), out)
	assert.True(t, strings.Contains(out, `"request_id":"req-42"`), out)
}

func TestAPIStack_RateLimited(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()

	h := APIStack(logger, fixedUser{}, config.CORSConfig{}, rl)(okHandler())

	assert.Equal(t, http.StatusOK, serveFrom(h, "9.9.9.9:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(h, "9.9.9.9:1").Code)
}
