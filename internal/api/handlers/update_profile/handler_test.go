package update_profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

type stubSessionService struct {
	resp *models.ProfileResponse
	err  error

	gotReq *models.UpdateProfileRequest
}

func (s *stubSessionService) UpdateProfile(_ context.Context, _ *domain.Session, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
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

func doUpdateProfile(t *testing.T, stub *stubSessionService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(stub, testLogger{})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/profile", strings.NewReader(body))
	ctx := middleware.WithSession(req.Context(), &domain.Session{UserID: 7})
	rec := httptest.NewRecorder()
	h.Handle(rec, req.WithContext(ctx))
	return rec
}

func TestHandle_Success(t *testing.T) {
	stub := &stubSessionService{
		resp: &models.ProfileResponse{ID: 7, Email: "user@example.com", FirstName: "Оксана"},
	}

	rec := doUpdateProfile(t, stub, `{"firstName":"Оксана"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"user@example.com"`)
	require.NotNil(t, stub.gotReq)
	require.NotNil(t, stub.gotReq.FirstName)
	assert.Equal(t, "Оксана", *stub.gotReq.FirstName)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doUpdateProfile(t, &stubSessionService{}, `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ProfileRejected(t *testing.T) {
	stub := &stubSessionService{err: sessionService.ErrProfileRejected}
	rec := doUpdateProfile(t, stub, `{"firstName":"Оксана"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "відхилено")
}

func TestHandle_SessionExpired(t *testing.T) {
	stub := &stubSessionService{err: sessionService.ErrSessionNotFound}
	rec := doUpdateProfile(t, stub, `{"firstName":"Оксана"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_CoreUnavailable(t *testing.T) {
	stub := &stubSessionService{err: sessionService.ErrUpstream}
	rec := doUpdateProfile(t, stub, `{"firstName":"Оксана"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
