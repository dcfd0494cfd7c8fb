package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/types"
)

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func sectionSlot(id int64, date string, start, end string, seats int) TimeSlot {
	return TimeSlot{
		ID:             id,
		Date:           date,
		StartTime:      mustTime(start),
		EndTime:        mustTime(end),
		AvailableSeats: ptr.Ptr(seats),
		TotalSeats:     10,
	}
}

func TestGroupSlotsByDate_PartitionsExactly(t *testing.T) {
	slots := []TimeSlot{
		sectionSlot(1, "2025-06-01", "10:00", "11:00", 3),
		sectionSlot(2, "2025-06-01", "12:00", "13:00", 0),
		sectionSlot(3, "2025-06-02", "10:00", "11:00", 5),
	}

	grouped := GroupSlotsByDate(slots)

	require.Len(t, grouped, 2)
	// кожен вхідний слот потрапляє рівно в одну групу, порядок у межах дати збережено
	require.Len(t, grouped["2025-06-01"], 2)
	assert.Equal(t, int64(1), grouped["2025-06-01"][0].ID)
	assert.Equal(t, int64(2), grouped["2025-06-01"][1].ID)
	require.Len(t, grouped["2025-06-02"], 1)
	assert.Equal(t, int64(3), grouped["2025-06-02"][0].ID)

	total := 0
	for _, g := range grouped {
		total += len(g)
	}
	assert.Equal(t, len(slots), total)
}

func TestGroupSlotsByDate_EmptyInput(t *testing.T) {
	assert.Empty(t, GroupSlotsByDate(nil))
	assert.Empty(t, AvailableDates(nil))
	assert.False(t, IsDateAvailable("2025-06-01", nil))
}

func TestAvailableDates_SortedAndUnique(t *testing.T) {
	slots := []TimeSlot{
		sectionSlot(1, "2025-06-02", "10:00", "11:00", 1),
		sectionSlot(2, "2025-06-01", "10:00", "11:00", 3),
		sectionSlot(3, "2025-06-01", "12:00", "13:00", 0),
	}

	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, AvailableDates(slots))
}

func TestIsDateAvailable(t *testing.T) {
	slots := []TimeSlot{sectionSlot(1, "2025-06-01", "10:00", "11:00", 3)}

	assert.True(t, IsDateAvailable("2025-06-01", slots))
	assert.False(t, IsDateAvailable("2025-06-03", slots))
}

func TestSelectableFor_Section(t *testing.T) {
	withSeats := sectionSlot(1, "2025-06-01", "10:00", "11:00", 3)
	full := sectionSlot(2, "2025-06-01", "12:00", "13:00", 0)
	noLimit := TimeSlot{ID: 3, Date: "2025-06-01"} // AvailableSeats відсутній

	assert.True(t, withSeats.SelectableFor(KindSection))
	assert.False(t, full.SelectableFor(KindSection))
	assert.False(t, noLimit.SelectableFor(KindSection))
}

func TestSelectableFor_Hall(t *testing.T) {
	tests := []struct {
		name        string
		isBooked    bool
		hasSections bool
		want        bool
	}{
		{name: "free", isBooked: false, hasSections: false, want: true},
		{name: "booked", isBooked: true, hasSections: false, want: false},
		{name: "occupied by sections", isBooked: false, hasSections: true, want: false},
		{name: "both", isBooked: true, hasSections: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := TimeSlot{Date: "2025-06-03", IsBooked: tt.isBooked, HasSections: tt.hasSections}
			assert.Equal(t, tt.want, slot.SelectableFor(KindHall))
		})
	}
}

func TestCanConfirm(t *testing.T) {
	// немає вибраного слота - підтвердження заборонено для обох потоків
	assert.False(t, CanConfirm(nil, KindHall))
	assert.False(t, CanConfirm(nil, KindSection))

	// зал: заброньований слот не можна підтвердити, навіть якщо він "вибраний"
	booked := &TimeSlot{Date: "2025-06-03", IsBooked: true}
	assert.False(t, CanConfirm(booked, KindHall))

	free := &TimeSlot{Date: "2025-06-03"}
	assert.True(t, CanConfirm(free, KindHall))

	// секція: достатньо самого факту вибору, доступність перевіряється на кнопці слота
	fullSection := sectionSlot(1, "2025-06-01", "12:00", "13:00", 0)
	assert.True(t, CanConfirm(&fullSection, KindSection))
}

func TestSlotsForDate(t *testing.T) {
	slots := []TimeSlot{
		sectionSlot(1, "2025-06-01", "10:00", "11:00", 3),
		sectionSlot(2, "2025-06-02", "10:00", "11:00", 5),
	}

	got := SlotsForDate("2025-06-01", slots)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Empty(t, SlotsForDate("2025-06-05", slots))
}
