package sportapi

import (
	"time"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/types"
)

// Wire-моделі основного API. Імена полів повторюють snake_case відповіді
// Django-бекенда; конвертація в domain виконується на рівні сервісів.

// Credentials дані для входу
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest дані для реєстрації
type RegisterRequest struct {
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Password  *string `json:"password,omitempty"`
}

// AuthResponse відповідь на вхід/реєстрацію: пара токенів та профіль
type AuthResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user"`
}

// UserProfile профіль користувача
type UserProfile struct {
	ID          int64        `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Age         *int         `json:"age"`
	Phone       *string      `json:"phone"`
	Photo       *string      `json:"photo"`
	BonusPoints int          `json:"bonus_points"`
	Card        *LoyaltyCard `json:"card"`
	IsStaff     bool         `json:"is_staff"`
}

// ProfileUpdate часткове оновлення профілю
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// LoyaltyCard картка лояльності
type LoyaltyCard struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Benefits        string  `json:"benefits"`
	BonusMultiplier float64 `json:"bonus_multiplier"`
	Price           float64 `json:"price,string"`
}

// Loyalty бали та картка користувача
type Loyalty struct {
	ID          int64        `json:"id"`
	Email       string       `json:"email"`
	BonusPoints int          `json:"bonus_points"`
	Card        *LoyaltyCard `json:"card"`
}

// RedeemRequest списання балів за бронювання
type RedeemRequest struct {
	Reservation int64 `json:"reservation"`
	Points      int   `json:"points"`
}

// RedeemResult результат списання балів
type RedeemResult struct {
	UsedPoints     int     `json:"used_points"`
	Discount       float64 `json:"discount,string"`
	RemainingPrice float64 `json:"remaining_price,string"`
}

// Hall зал
type Hall struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	RoomNumber string  `json:"room_number"`
	EventType  string  `json:"event_type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price,string"`
	IsActive   bool    `json:"is_active"`
}

// HallPayload дані для створення/оновлення залу
type HallPayload struct {
	Name       string  `json:"name"`
	RoomNumber string  `json:"room_number"`
	EventType  string  `json:"event_type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	IsActive   bool    `json:"is_active"`
}

// Section секція
type Section struct {
	ID               int64   `json:"id"`
	Hall             int64   `json:"hall"`
	HallName         string  `json:"hall_name"`
	Trainer          *int64  `json:"trainer"`
	TrainerName      *string `json:"trainer_name"`
	SportType        string  `json:"sport_type"`
	PreparationLevel string  `json:"preparation_level"`
	MinAge           *int    `json:"min_age"`
	MaxAge           *int    `json:"max_age"`
	Price            float64 `json:"price,string"`
	FreeSeats        int     `json:"free_seats"`
}

// SectionPayload дані для створення/оновлення секції
type SectionPayload struct {
	Hall             int64   `json:"hall"`
	Trainer          *int64  `json:"trainer,omitempty"`
	SportType        string  `json:"sport_type"`
	PreparationLevel string  `json:"preparation_level"`
	MinAge           *int    `json:"min_age,omitempty"`
	MaxAge           *int    `json:"max_age,omitempty"`
	Price            float64 `json:"price"`
	FreeSeats        int     `json:"free_seats"`
}

// Trainer тренер
type Trainer struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
	Phone           string `json:"phone"`
}

// TimeSlot слот з ендпоінта available-timeslots
// available_seats відсутній для залів; is_booked/has_sections - для секцій
type TimeSlot struct {
	ID             int64            `json:"id"`
	Date           string           `json:"date"`
	StartTime      types.TimeString `json:"start_time"`
	EndTime        types.TimeString `json:"end_time"`
	AvailableSeats *int             `json:"available_seats"`
	TotalSeats     int              `json:"total_seats"`
	IsBooked       bool             `json:"is_booked"`
	HasSections    bool             `json:"has_sections"`
}

// SchedulePayload додавання слота до розкладу секції
type SchedulePayload struct {
	SectionID int64  `json:"section_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CreateBookingRequest намір бронювання
type CreateBookingRequest struct {
	Hall               *int64 `json:"hall"`
	Section            *int64 `json:"section"`
	Timeslot           int64  `json:"timeslot"`
	Seats              int    `json:"seats"`
	PaymentMethod      string `json:"payment_method"`
	UseBonusPoints     bool   `json:"use_bonus_points,omitempty"`
	BonusPoints        int    `json:"bonus_points,omitempty"`
	UserSubscriptionID *int64 `json:"user_subscription_id,omitempty"`
}

// CreateBookingResponse підтвердження створеного бронювання
type CreateBookingResponse struct {
	Message     string      `json:"message"`
	ID          int64       `json:"id"`
	Reservation Reservation `json:"reservation"`
}

// Reservation бронювання
type Reservation struct {
	ID                      int64            `json:"id"`
	Hall                    *int64           `json:"hall"`
	Section                 *int64           `json:"section"`
	Timeslot                int64            `json:"timeslot"`
	TimeslotDate            string           `json:"timeslot_date"`
	TimeslotStartTime       types.TimeString `json:"timeslot_start_time"`
	TimeslotEndTime         types.TimeString `json:"timeslot_end_time"`
	ReservationStatus       string           `json:"reservation_status"`
	PaymentStatus           string           `json:"payment_status"`
	UsedSubscription        *int64           `json:"used_subscription"`
	Price                   float64          `json:"price,string"`
	Seats                   int              `json:"seats"`
	HallName                string           `json:"hall_name"`
	HallEventType           string           `json:"hall_event_type"`
	SectionSportType        string           `json:"section_sport_type"`
	SectionPreparationLevel string           `json:"section_preparation_level"`
	SectionTrainerName      *string          `json:"section_trainer_name"`
	CustomerFirstName       string           `json:"customer_first_name"`
	CustomerLastName        string           `json:"customer_last_name"`
	CustomerEmail           string           `json:"customer_email"`
	CreatedAt               time.Time        `json:"created_at"`
}

// ReservationStatusPatch зміна статусів бронювання
type ReservationStatusPatch struct {
	ReservationStatus *string `json:"reservation_status,omitempty"`
	PaymentStatus     *string `json:"payment_status,omitempty"`
}

// Notification сповіщення
type Notification struct {
	ID               int64     `json:"id"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	DateTime         time.Time `json:"date_time"`
	IsRead           bool      `json:"is_read"`
}

// NotificationList сповіщення користувача з лічильником непрочитаних
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// Subscription абонемент
type Subscription struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price,string"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
}

// UserSubscription придбаний абонемент користувача
type UserSubscription struct {
	ID           int64        `json:"id"`
	Subscription Subscription `json:"subscription"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	IsActive     bool         `json:"is_active"`
	IsUsed       bool         `json:"is_used"`
}

// PurchaseResponse підтвердження покупки абонемента
type PurchaseResponse struct {
	Message          string           `json:"message"`
	UserSubscription UserSubscription `json:"user_subscription"`
}

// ErrorResponse модель помилки основного API
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Message повертає людиночитний текст помилки
func (e ErrorResponse) Message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Detail
}
