package get_availability

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
)

// Request модель запиту доступності слотів
type Request struct {
	HallID    *int64 // ID залу (взаємовиключно із секцією)
	SectionID *int64 // ID секції (взаємовиключно із залом)

	// Обраний користувачем слот (опціонально). Якщо вказано,
	// у відповіді обчислюється готовність до підтвердження.
	SelectedSlotID *int64
}

// Kind повертає тип бронювання за вказаною ціллю
func (r *Request) Kind() domain.BookingKind {
	if r.SectionID != nil {
		return domain.KindSection
	}
	return domain.KindHall
}

// Slot слот у відповіді з готовою ознакою вибірності
type Slot struct {
	ID             int64  `json:"id"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	AvailableSeats *int   `json:"availableSeats,omitempty"`
	TotalSeats     int    `json:"totalSeats,omitempty"`
	IsBooked       bool   `json:"isBooked,omitempty"`
	HasSections    bool   `json:"hasSections,omitempty"`
	Selectable     bool   `json:"selectable"`
}

// Day слоти однієї дати
type Day struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Response модель відповіді: дати з доступністю та слоти за датами
type Response struct {
	Kind       string   `json:"kind"` // "hall" | "section"
	Dates      []string `json:"dates"`
	Days       []Day    `json:"days"`
	CanConfirm bool     `json:"canConfirm"`
}
