package domain

import "time"

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationPromo    NotificationType = "promo"
	NotificationBonus    NotificationType = "bonus"
)

// Notification is a message the core API delivered to the user
type Notification struct {
	ID      int64
	Type    NotificationType
	Message string
	IsRead  bool
	SentAt  time.Time
}

// Subscription is a purchasable pass
type Subscription struct {
	ID           int64
	Type         string // single/monthly/corporate
	DurationDays int
	Price        float64
	Description  string
	Status       string // active/inactive
}

// UserSubscription is a purchased pass on a user's account
type UserSubscription struct {
	ID           int64
	Subscription Subscription
	StartDate    string // YYYY-MM-DD
	EndDate      string
	IsActive     bool
	IsUsed       bool
}
