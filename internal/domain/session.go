package domain

import "time"

// Session is the explicit authentication object the gateway issues after a
// successful login against the core API. It carries the upstream tokens so
// the fetch layer never reads ambient state. Lifecycle:
// absent -> authenticated -> expired/cleared.
type Session struct {
	Token        string // gateway session token, opaque
	UserID       int64
	IsStaff      bool
	AccessToken  string // core API access token, passed through as-is
	RefreshToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired returns true if the session is past its lifetime
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Profile is the account snapshot the core API returns for a session
type Profile struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	Age         *int
	Phone       *string
	PhotoURL    *string
	BonusPoints int
	Card        *LoyaltyCard
	IsStaff     bool
}

// LoyaltyCard is the loyalty card attached to an account
type LoyaltyCard struct {
	ID              int64
	Type            string // standard/premium/corporate
	Benefits        string
	BonusMultiplier float64
	Price           float64
}

// LoyaltyAccount is the points balance plus card shown on the loyalty screen
type LoyaltyAccount struct {
	UserID      int64
	Email       string
	BonusPoints int
	Card        *LoyaltyCard
}
