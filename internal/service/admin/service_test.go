package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/view"
)

type stubClient struct {
	reservations []sportapi.Reservation
	halls        []sportapi.Hall
	sections     []sportapi.Section
	trainers     []sportapi.Trainer

	reservationsErr error
	hallsErr        error
	sectionsErr     error
	trainersErr     error
}

func (s *stubClient) AllReservations(_ context.Context, _ string) ([]sportapi.Reservation, error) {
	return s.reservations, s.reservationsErr
}

func (s *stubClient) PatchReservation(_ context.Context, _ string, _ int64, _ sportapi.ReservationStatusPatch) (*sportapi.Reservation, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) ListHalls(_ context.Context, _ *string, _ *int) ([]sportapi.Hall, error) {
	return s.halls, s.hallsErr
}

func (s *stubClient) CreateHall(_ context.Context, _ string, _ sportapi.HallPayload) (*sportapi.Hall, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) UpdateHall(_ context.Context, _ string, _ int64, _ sportapi.HallPayload) (*sportapi.Hall, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) DeleteHall(_ context.Context, _ string, _ int64) error {
	return errors.New("not used")
}

func (s *stubClient) ListSections(_ context.Context, _, _, _ *string, _ *int64) ([]sportapi.Section, error) {
	return s.sections, s.sectionsErr
}

func (s *stubClient) CreateSection(_ context.Context, _ string, _ sportapi.SectionPayload) (*sportapi.Section, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) UpdateSection(_ context.Context, _ string, _ int64, _ sportapi.SectionPayload) (*sportapi.Section, error) {
	return nil, errors.New("not used")
}

func (s *stubClient) DeleteSection(_ context.Context, _ string, _ int64) error {
	return errors.New("not used")
}

func (s *stubClient) AddScheduleSlot(_ context.Context, _ string, _ sportapi.SchedulePayload) error {
	return errors.New("not used")
}

func (s *stubClient) RemoveScheduleSlot(_ context.Context, _ string, _ int64) error {
	return errors.New("not used")
}

func (s *stubClient) ListTrainers(_ context.Context) ([]sportapi.Trainer, error) {
	return s.trainers, s.trainersErr
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestDashboard_AllPanelsSucceed(t *testing.T) {
	stub := &stubClient{
		reservations: []sportapi.Reservation{
			{ID: 1, ReservationStatus: "confirmed"},
			{ID: 2, ReservationStatus: "confirmed"},
			{ID: 3, ReservationStatus: "pending"},
		},
		halls:    []sportapi.Hall{{ID: 1}, {ID: 2}},
		sections: []sportapi.Section{{ID: 1}},
		trainers: []sportapi.Trainer{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	svc := NewService(stub, testLogger{})

	resp, err := svc.Dashboard(context.Background(), "token")
	require.NoError(t, err)

	assert.Equal(t, string(view.StateSuccess), resp.Reservations.State)
	assert.Equal(t, 3, resp.Reservations.Count)
	assert.Equal(t, map[string]int{"confirmed": 2, "pending": 1}, resp.ReservationsByStatus)

	assert.Equal(t, string(view.StateSuccess), resp.Halls.State)
	assert.Equal(t, 2, resp.Halls.Count)
	assert.Equal(t, string(view.StateSuccess), resp.Sections.State)
	assert.Equal(t, 1, resp.Sections.Count)
	assert.Equal(t, string(view.StateSuccess), resp.Trainers.State)
	assert.Equal(t, 3, resp.Trainers.Count)
}

func TestDashboard_FailedPanelDoesNotAffectOthers(t *testing.T) {
	stub := &stubClient{
		reservations: []sportapi.Reservation{{ID: 1, ReservationStatus: "pending"}},
		hallsErr:     errors.New("core api down"),
		sections:     []sportapi.Section{{ID: 1}},
		trainers:     []sportapi.Trainer{{ID: 1}},
	}
	svc := NewService(stub, testLogger{})

	resp, err := svc.Dashboard(context.Background(), "token")
	require.NoError(t, err)

	assert.Equal(t, string(view.StateError), resp.Halls.State)
	assert.Equal(t, "core api down", resp.Halls.Error)
	assert.Zero(t, resp.Halls.Count)

	assert.Equal(t, string(view.StateSuccess), resp.Reservations.State)
	assert.Equal(t, string(view.StateSuccess), resp.Sections.State)
	assert.Equal(t, string(view.StateSuccess), resp.Trainers.State)
}

func TestDashboard_ReservationsPanelFailure(t *testing.T) {
	stub := &stubClient{
		reservationsErr: errors.New("timeout"),
		halls:           []sportapi.Hall{{ID: 1}},
		sections:        []sportapi.Section{{ID: 1}},
		trainers:        []sportapi.Trainer{{ID: 1}},
	}
	svc := NewService(stub, testLogger{})

	resp, err := svc.Dashboard(context.Background(), "token")
	require.NoError(t, err)

	assert.Equal(t, string(view.StateError), resp.Reservations.State)
	assert.Equal(t, "timeout", resp.Reservations.Error)
	assert.Nil(t, resp.ReservationsByStatus)
}
