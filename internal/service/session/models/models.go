package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// Request моделі

// LoginRequest запит на вхід
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запит на реєстрацію
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// UpdateProfileRequest часткове оновлення профілю
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Response моделі

// SessionResponse нова сесія з профілем користувача
type SessionResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse профіль користувача
type ProfileResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Age         *int      `json:"age,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Photo       *string   `json:"photo,omitempty"`
	BonusPoints int       `json:"bonusPoints"`
	Card        *CardInfo `json:"card,omitempty"`
	IsStaff     bool      `json:"isStaff"`
}

// CardInfo картка лояльності в профілі
type CardInfo struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Benefits        string  `json:"benefits"`
	BonusMultiplier float64 `json:"bonusMultiplier"`
}

// ToDomainProfile конвертує профіль основного API в domain
func ToDomainProfile(p *sportapi.UserProfile) *domain.Profile {
	profile := &domain.Profile{
		ID:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Age:         p.Age,
		Phone:       p.Phone,
		PhotoURL:    p.Photo,
		BonusPoints: p.BonusPoints,
		IsStaff:     p.IsStaff,
	}
	if p.Card != nil {
		profile.Card = &domain.LoyaltyCard{
			ID:              p.Card.ID,
			Type:            p.Card.Type,
			Benefits:        p.Card.Benefits,
			BonusMultiplier: p.Card.BonusMultiplier,
			Price:           p.Card.Price,
		}
	}
	return profile
}

// FromDomainProfile будує відповідь із domain-моделі профілю
func FromDomainProfile(p *domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Age:         p.Age,
		Phone:       p.Phone,
		Photo:       p.PhotoURL,
		BonusPoints: p.BonusPoints,
		IsStaff:     p.IsStaff,
	}
	if p.Card != nil {
		resp.Card = &CardInfo{
			ID:              p.Card.ID,
			Type:            p.Card.Type,
			Benefits:        p.Card.Benefits,
			BonusMultiplier: p.Card.BonusMultiplier,
		}
	}
	return resp
}

// FromWireProfile конвертує профіль основного API у відповідь шлюзу
func FromWireProfile(p *sportapi.UserProfile) ProfileResponse {
	return FromDomainProfile(ToDomainProfile(p))
}

// ToWireProfileUpdate конвертує запит оновлення у wire-модель основного API
func (r *UpdateProfileRequest) ToWireProfileUpdate() sportapi.ProfileUpdate {
	return sportapi.ProfileUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}
