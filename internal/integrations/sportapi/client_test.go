package sportapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, noopLogger{})
}

func TestClient_Login_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access": "acc-token",
			"refresh": "ref-token",
			"user": {"id": 7, "email": "user@test.ua", "first_name": "Olena", "is_staff": false}
		}`))
	})

	resp, err := client.Login(context.Background(), Credentials{Email: "user@test.ua", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "acc-token", resp.Access)
	assert.Equal(t, "ref-token", resp.Refresh)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.False(t, resp.User.IsStaff)
}

func TestClient_Login_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), Credentials{Email: "user@test.ua", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_CreateBooking_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Недостатньо вільних місць"}`))
	})

	_, err := client.CreateBooking(context.Background(), "token", CreateBookingRequest{
		Section:       ptr.Ptr(int64(3)),
		Timeslot:      11,
		Seats:         5,
		PaymentMethod: "card",
	})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Недостатньо вільних місць")
}

func TestClient_GetReservation_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetReservation(context.Background(), "token", 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_AllReservations_Forbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.AllReservations(context.Background(), "token")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListTrainers(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, noopLogger{})

	_, err := client.ListTrainers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer acc-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"notifications": [], "unread_count": 0}`))
	})

	_, err := client.ListNotifications(context.Background(), "acc-token")
	require.NoError(t, err)
}

func TestClient_AvailableTimeslots_Query(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("section_id"))
		assert.Empty(t, r.URL.Query().Get("hall_id"))

		w.Write([]byte(`[
			{"id": 1, "date": "2025-06-10", "start_time": "10:00", "end_time": "11:00", "available_seats": 4, "total_seats": 10}
		]`))
	})

	slots, err := client.AvailableTimeslots(context.Background(), nil, ptr.Ptr(int64(3)))
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, "2025-06-10", slots[0].Date)
	assert.Equal(t, "10:00", slots[0].StartTime.String())
	require.NotNil(t, slots[0].AvailableSeats)
	assert.Equal(t, 4, *slots[0].AvailableSeats)
}

func TestClient_ErrorMessageFromDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Слот уже зайнятий"}`))
	})

	err := client.AddScheduleSlot(context.Background(), "token", SchedulePayload{
		SectionID: 1,
		Date:      "2025-06-10",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Слот уже зайнятий")
}
