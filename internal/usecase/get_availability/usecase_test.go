package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/types"
)

type stubBookingsService struct {
	slots []domain.TimeSlot
	err   error

	gotHallID    *int64
	gotSectionID *int64
}

func (s *stubBookingsService) AvailableTimeslots(_ context.Context, hallID, sectionID *int64) ([]domain.TimeSlot, error) {
	s.gotHallID = hallID
	s.gotSectionID = sectionID
	return s.slots, s.err
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func sectionSlots(t *testing.T) []domain.TimeSlot {
	t.Helper()
	return []domain.TimeSlot{
		{ID: 1, Date: "2025-06-11", StartTime: mustTime(t, "12:00"), EndTime: mustTime(t, "13:00"), AvailableSeats: ptr.Ptr(0), TotalSeats: 10},
		{ID: 2, Date: "2025-06-10", StartTime: mustTime(t, "10:00"), EndTime: mustTime(t, "11:00"), AvailableSeats: ptr.Ptr(4), TotalSeats: 10},
		{ID: 3, Date: "2025-06-10", StartTime: mustTime(t, "11:00"), EndTime: mustTime(t, "12:00"), AvailableSeats: ptr.Ptr(2), TotalSeats: 10},
	}
}

func TestExecute_GroupsAndSelectability(t *testing.T) {
	stub := &stubBookingsService{slots: sectionSlots(t)}
	uc := NewUseCase(stub, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SectionID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	assert.Equal(t, "section", resp.Kind)
	assert.Equal(t, []string{"2025-06-10", "2025-06-11"}, resp.Dates)
	require.Len(t, resp.Days, 2)

	// Дати відсортовані, слоти згруповані
	assert.Equal(t, "2025-06-10", resp.Days[0].Date)
	require.Len(t, resp.Days[0].Slots, 2)
	assert.True(t, resp.Days[0].Slots[0].Selectable)
	assert.True(t, resp.Days[0].Slots[1].Selectable)

	// Слот без вільних місць не вибірний
	assert.Equal(t, "2025-06-11", resp.Days[1].Date)
	require.Len(t, resp.Days[1].Slots, 1)
	assert.False(t, resp.Days[1].Slots[0].Selectable)

	require.NotNil(t, stub.gotSectionID)
	assert.Equal(t, int64(3), *stub.gotSectionID)
	assert.Nil(t, stub.gotHallID)
}

func TestExecute_CanConfirm(t *testing.T) {
	stub := &stubBookingsService{slots: sectionSlots(t)}
	uc := NewUseCase(stub, testLogger{})

	// Вибірний слот
	resp, err := uc.Execute(context.Background(), &Request{
		SectionID:      ptr.Ptr(int64(3)),
		SelectedSlotID: ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.True(t, resp.CanConfirm)

	// Слот без вільних місць
	resp, err = uc.Execute(context.Background(), &Request{
		SectionID:      ptr.Ptr(int64(3)),
		SelectedSlotID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.False(t, resp.CanConfirm)

	// Неіснуючий слот
	resp, err = uc.Execute(context.Background(), &Request{
		SectionID:      ptr.Ptr(int64(3)),
		SelectedSlotID: ptr.Ptr(int64(99)),
	})
	require.NoError(t, err)
	assert.False(t, resp.CanConfirm)
}

func TestExecute_HallBranch(t *testing.T) {
	stub := &stubBookingsService{slots: []domain.TimeSlot{
		{ID: 10, Date: "2025-06-12", StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "10:00")},
		{ID: 11, Date: "2025-06-12", StartTime: mustTime(t, "10:00"), EndTime: mustTime(t, "11:00"), IsBooked: true},
		{ID: 12, Date: "2025-06-12", StartTime: mustTime(t, "11:00"), EndTime: mustTime(t, "12:00"), HasSections: true},
	}}
	uc := NewUseCase(stub, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HallID: ptr.Ptr(int64(5))})
	require.NoError(t, err)

	assert.Equal(t, "hall", resp.Kind)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Slots, 3)
	assert.True(t, resp.Days[0].Slots[0].Selectable)
	assert.False(t, resp.Days[0].Slots[1].Selectable)
	assert.False(t, resp.Days[0].Slots[2].Selectable)
}

func TestExecute_EmptySlots(t *testing.T) {
	stub := &stubBookingsService{}
	uc := NewUseCase(stub, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HallID: ptr.Ptr(int64(5))})
	require.NoError(t, err)

	assert.Empty(t, resp.Dates)
	assert.Empty(t, resp.Days)
	assert.False(t, resp.CanConfirm)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubBookingsService{}, testLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoTarget)

	_, err = uc.Execute(context.Background(), &Request{
		HallID:    ptr.Ptr(int64(1)),
		SectionID: ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrAmbiguousTarget)
}

func TestExecute_TargetNotFound(t *testing.T) {
	stub := &stubBookingsService{err: bookingsService.ErrReservationNotFound}
	uc := NewUseCase(stub, testLogger{})

	_, err := uc.Execute(context.Background(), &Request{SectionID: ptr.Ptr(int64(404))})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}
