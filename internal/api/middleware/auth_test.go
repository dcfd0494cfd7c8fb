package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
)

type stubAuthenticator struct {
	sess *domain.Session
	err  error

	gotToken string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	s.gotToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.sess, nil
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestRequireSession_BearerToken(t *testing.T) {
	stub := &stubAuthenticator{sess: &domain.Session{Token: "abc", UserID: 7}}
	auth := NewAuth(stub, testLogger{})

	var got *domain.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	auth.RequireSession(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", stub.gotToken)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
}

func TestRequireSession_Cookie(t *testing.T) {
	stub := &stubAuthenticator{sess: &domain.Session{Token: "abc"}}
	auth := NewAuth(stub, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "abc"})
	rec := httptest.NewRecorder()

	auth.RequireSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", stub.gotToken)
}

func TestRequireSession_MissingToken(t *testing.T) {
	auth := NewAuth(&stubAuthenticator{}, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	called := false
	auth.RequireSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireSession_UnknownToken(t *testing.T) {
	stub := &stubAuthenticator{err: sessionService.ErrSessionNotFound}
	auth := NewAuth(stub, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	auth.RequireSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaff(t *testing.T) {
	auth := NewAuth(&stubAuthenticator{}, testLogger{})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	t.Run("staff passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithSession(req.Context(), &domain.Session{UserID: 1, IsStaff: true}))
		rec := httptest.NewRecorder()

		auth.RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-staff forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithSession(req.Context(), &domain.Session{UserID: 2}))
		rec := httptest.NewRecorder()

		auth.RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no session unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		auth.RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
