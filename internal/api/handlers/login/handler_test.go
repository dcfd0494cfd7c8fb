package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

type stubSessionService struct {
	resp *models.SessionResponse
	err  error

	gotReq *models.LoginRequest
}

func (s *stubSessionService) Login(_ context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func doLogin(t *testing.T, stub *stubSessionService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(stub, testLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	stub := &stubSessionService{
		resp: &models.SessionResponse{
			Token:   "abc123",
			Profile: models.ProfileResponse{ID: 7, Email: "user@example.com"},
		},
	}

	rec := doLogin(t, stub, `{"email":"user@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"abc123"`)
	assert.Equal(t, "user@example.com", stub.gotReq.Email)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, "abc123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doLogin(t, &stubSessionService{}, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingFields(t *testing.T) {
	stub := &stubSessionService{}
	rec := doLogin(t, stub, `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotReq)
}

func TestHandle_InvalidCredentials(t *testing.T) {
	stub := &stubSessionService{err: sessionService.ErrInvalidCredentials}
	rec := doLogin(t, stub, `{"email":"user@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandle_CoreUnavailable(t *testing.T) {
	stub := &stubSessionService{err: sessionService.ErrUpstream}
	rec := doLogin(t, stub, `{"email":"user@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
