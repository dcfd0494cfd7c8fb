package create_booking

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
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
	createBooking "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
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

func doCreate(t *testing.T, stub *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(stub, testLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))

	sess := &domain.Session{Token: "sess", UserID: 7, AccessToken: "access"}
	req = req.WithContext(middleware.WithSession(req.Context(), sess))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	stub := &stubUseCase{
		resp: &createBooking.Response{
			Message:     "Бронювання створено",
			Reservation: models.ReservationResponse{ID: 42, Kind: "section"},
		},
	}

	rec := doCreate(t, stub, `{"sectionId":3,"timeslotId":9,"seats":2,"paymentMethod":"card"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)

	require.NotNil(t, stub.gotReq)
	assert.Equal(t, "access", stub.gotReq.AccessToken)
	assert.Equal(t, 2, stub.gotReq.Seats)
}

func TestHandle_HallSeatsDefaulted(t *testing.T) {
	stub := &stubUseCase{resp: &createBooking.Response{}}

	doCreate(t, stub, `{"hallId":1,"timeslotId":9,"paymentMethod":"card"}`)

	require.NotNil(t, stub.gotReq)
	assert.Equal(t, 1, stub.gotReq.Seats)
}

func TestHandle_InvalidBody(t *testing.T) {
	stub := &stubUseCase{}
	rec := doCreate(t, stub, `{"seats":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotReq)
}

func TestHandle_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"no target", createBooking.ErrNoTarget},
		{"ambiguous target", createBooking.ErrAmbiguousTarget},
		{"payment method", createBooking.ErrInvalidPaymentMethod},
		{"seats", createBooking.ErrInvalidSeats},
		{"bonus points", createBooking.ErrInvalidBonusPoints},
		{"subscription", createBooking.ErrSubscriptionRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubUseCase{err: tc.err}
			rec := doCreate(t, stub, `{"sectionId":3,"timeslotId":9,"seats":2,"paymentMethod":"card"}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_Rejected(t *testing.T) {
	stub := &stubUseCase{err: createBooking.ErrBookingRejected}
	rec := doCreate(t, stub, `{"sectionId":3,"timeslotId":9,"seats":2,"paymentMethod":"card"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SessionExpired(t *testing.T) {
	stub := &stubUseCase{err: createBooking.ErrSessionExpired}
	rec := doCreate(t, stub, `{"sectionId":3,"timeslotId":9,"seats":2,"paymentMethod":"card"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_NoSessionInContext(t *testing.T) {
	h := NewHandler(&stubUseCase{}, testLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
