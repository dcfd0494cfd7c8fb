package domain

import (
	"sort"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/types"
)

// BookingKind discriminates the two booking flows
type BookingKind string

const (
	KindHall    BookingKind = "hall"
	KindSection BookingKind = "section"
)

// TimeSlot represents a concrete date + start/end time instance the core API
// exposes for booking. Availability fields are server-provided and
// authoritative; the gateway never recomputes them.
type TimeSlot struct {
	ID        int64
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString

	// Section slots: number of free seats. Nil means the slot is not
	// seat-limited (hall slots).
	AvailableSeats *int
	TotalSeats     int

	// Hall slots only.
	IsBooked    bool
	HasSections bool
}

// SelectableFor returns true if the slot can be chosen for confirmation
// in the given booking flow
func (s *TimeSlot) SelectableFor(kind BookingKind) bool {
	if kind == KindSection {
		return s.AvailableSeats != nil && *s.AvailableSeats > 0
	}
	return !s.IsBooked && !s.HasSections
}

// GroupSlotsByDate partitions slots by their exact date string.
// Within a date the input order is preserved. Empty input yields an empty map.
func GroupSlotsByDate(slots []TimeSlot) map[string][]TimeSlot {
	grouped := make(map[string][]TimeSlot, len(slots))
	for _, slot := range slots {
		grouped[slot.Date] = append(grouped[slot.Date], slot)
	}
	return grouped
}

// AvailableDates returns the distinct dates that have at least one slot,
// ascending. Lexicographic order is chronological for YYYY-MM-DD.
func AvailableDates(slots []TimeSlot) []string {
	grouped := GroupSlotsByDate(slots)
	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// IsDateAvailable reports whether any slot exists on the given date.
// Used to disable calendar cells.
func IsDateAvailable(date string, slots []TimeSlot) bool {
	for _, slot := range slots {
		if slot.Date == date {
			return true
		}
	}
	return false
}

// SlotsForDate returns the slots on the given date, input order preserved
func SlotsForDate(date string, slots []TimeSlot) []TimeSlot {
	return GroupSlotsByDate(slots)[date]
}

// CanConfirm reports whether the confirm action is allowed for the current
// selection. No selection always means false; the hall flow additionally
// requires the selected slot to be free of bookings and sections.
func CanConfirm(selected *TimeSlot, kind BookingKind) bool {
	if selected == nil {
		return false
	}
	if kind == KindHall {
		return selected.SelectableFor(KindHall)
	}
	return true
}
