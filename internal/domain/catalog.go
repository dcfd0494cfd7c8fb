package domain

// Hall is a bookable physical room, reserved as a whole for a date
type Hall struct {
	ID         int64
	Name       string
	RoomNumber string
	EventType  string // Fitness, Pool, Dance
	Capacity   int
	Price      float64
	IsActive   bool
}

// Section is a recurring scheduled class within a hall, booked per time slot
// with a seat limit
type Section struct {
	ID               int64
	HallID           int64
	HallName         string
	TrainerID        *int64
	TrainerName      *string
	SportType        string // football, yoga, fitness, swimming
	PreparationLevel string // beginner/intermediate/advanced
	MinAge           *int
	MaxAge           *int
	Price            float64
	FreeSeats        int
}

// Trainer leads sections
type Trainer struct {
	ID              int64
	FirstName       string
	LastName        string
	Specialization  string
	ExperienceYears int
	Phone           string
}

// HallFilter параметри фільтрації каталогу залів
type HallFilter struct {
	EventType *string
	Capacity  *int // зал підходить, якщо його місткість >= потрібної
}

// SectionFilter параметри фільтрації каталогу секцій
type SectionFilter struct {
	SportType        *string
	PreparationLevel *string
	AgeCategory      *string // kids/teens/adults/adults_36_50/seniors
	HallID           *int64
}
