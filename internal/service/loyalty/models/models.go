package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// Request моделі

// RedeemRequest списання бонусних балів за бронювання
type RedeemRequest struct {
	ReservationID int64 `json:"reservationId"`
	Points        int   `json:"points"`
}

// Response моделі

// LoyaltyResponse бали та картка користувача
type LoyaltyResponse struct {
	BonusPoints int       `json:"bonusPoints"`
	Card        *CardInfo `json:"card,omitempty"`
}

// CardInfo картка лояльності
type CardInfo struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Benefits        string  `json:"benefits"`
	BonusMultiplier float64 `json:"bonusMultiplier"`
	Price           float64 `json:"price"`
}

// RedeemResponse результат списання балів
type RedeemResponse struct {
	UsedPoints     int     `json:"usedPoints"`
	Discount       float64 `json:"discount"`
	RemainingPrice float64 `json:"remainingPrice"`
}

// ToDomainCard конвертує wire-модель картки в domain
func ToDomainCard(c *sportapi.LoyaltyCard) *domain.LoyaltyCard {
	if c == nil {
		return nil
	}
	return &domain.LoyaltyCard{
		ID:              c.ID,
		Type:            c.Type,
		Benefits:        c.Benefits,
		BonusMultiplier: c.BonusMultiplier,
		Price:           c.Price,
	}
}

// ToDomainLoyalty конвертує wire-модель лояльності в domain
func ToDomainLoyalty(l *sportapi.Loyalty) *domain.LoyaltyAccount {
	return &domain.LoyaltyAccount{
		UserID:      l.ID,
		Email:       l.Email,
		BonusPoints: l.BonusPoints,
		Card:        ToDomainCard(l.Card),
	}
}

// FromDomainLoyalty будує відповідь із domain-моделі лояльності
func FromDomainLoyalty(l *domain.LoyaltyAccount) *LoyaltyResponse {
	resp := &LoyaltyResponse{BonusPoints: l.BonusPoints}
	if l.Card != nil {
		resp.Card = &CardInfo{
			ID:              l.Card.ID,
			Type:            l.Card.Type,
			Benefits:        l.Card.Benefits,
			BonusMultiplier: l.Card.BonusMultiplier,
			Price:           l.Card.Price,
		}
	}
	return resp
}

// FromWireLoyalty конвертує відповідь основного API
func FromWireLoyalty(l *sportapi.Loyalty) *LoyaltyResponse {
	return FromDomainLoyalty(ToDomainLoyalty(l))
}

// FromWireRedeemResult конвертує результат списання
func FromWireRedeemResult(r *sportapi.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		UsedPoints:     r.UsedPoints,
		Discount:       r.Discount,
		RemainingPrice: r.RemainingPrice,
	}
}
