package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinSeatsPerBooking = 1
	MaxSeatsPerBooking = 50
	MaxRedeemPoints    = 100000
)
