package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/get_availability"
)

type stubUseCase struct {
	resp *getAvailability.Response
	err  error

	gotReq *getAvailability.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
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

func doRequest(t *testing.T, stub *stubUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(stub, testLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-timeslots"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SectionQuery(t *testing.T) {
	stub := &stubUseCase{
		resp: &getAvailability.Response{
			Kind:  "section",
			Dates: []string{"2026-09-01"},
			Days: []getAvailability.Day{
				{Date: "2026-09-01", Slots: []getAvailability.Slot{{ID: 5, Selectable: true}}},
			},
		},
	}

	rec := doRequest(t, stub, "?sectionId=3&selectedSlotId=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"section"`)

	require.NotNil(t, stub.gotReq.SectionID)
	assert.Equal(t, int64(3), *stub.gotReq.SectionID)
	require.NotNil(t, stub.gotReq.SelectedSlotID)
	assert.Equal(t, int64(5), *stub.gotReq.SelectedSlotID)
	assert.Nil(t, stub.gotReq.HallID)
}

func TestHandle_MalformedID(t *testing.T) {
	stub := &stubUseCase{}
	rec := doRequest(t, stub, "?hallId=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotReq)
}

func TestHandle_NoTarget(t *testing.T) {
	stub := &stubUseCase{err: getAvailability.ErrNoTarget}
	rec := doRequest(t, stub, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_AmbiguousTarget(t *testing.T) {
	stub := &stubUseCase{err: getAvailability.ErrAmbiguousTarget}
	rec := doRequest(t, stub, "?hallId=1&sectionId=2")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_TargetNotFound(t *testing.T) {
	stub := &stubUseCase{err: getAvailability.ErrTargetNotFound}
	rec := doRequest(t, stub, "?hallId=99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_Upstream(t *testing.T) {
	stub := &stubUseCase{err: getAvailability.ErrInternal}
	rec := doRequest(t, stub, "?hallId=1")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
