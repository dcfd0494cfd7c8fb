package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// SubscriptionResponse абонемент з каталогу
type SubscriptionResponse struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	DurationDays int     `json:"durationDays"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
}

// SubscriptionListResponse список абонементів
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// UserSubscriptionResponse придбаний абонемент користувача
type UserSubscriptionResponse struct {
	ID           int64                `json:"id"`
	Subscription SubscriptionResponse `json:"subscription"`
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	IsActive     bool                 `json:"isActive"`
	IsUsed       bool                 `json:"isUsed"`
}

// UserSubscriptionListResponse список придбаних абонементів
type UserSubscriptionListResponse struct {
	Subscriptions []UserSubscriptionResponse `json:"subscriptions"`
}

// PurchaseResponse підтвердження покупки
type PurchaseResponse struct {
	Message      string                   `json:"message"`
	Subscription UserSubscriptionResponse `json:"subscription"`
}

// ToDomainSubscription конвертує wire-модель абонемента в domain
func ToDomainSubscription(s *sportapi.Subscription) domain.Subscription {
	return domain.Subscription{
		ID:           s.ID,
		Type:         s.Type,
		DurationDays: s.DurationDays,
		Price:        s.Price,
		Description:  s.Description,
		Status:       s.Status,
	}
}

// FromDomainSubscription будує відповідь із domain-моделі абонемента
func FromDomainSubscription(s domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           s.ID,
		Type:         s.Type,
		DurationDays: s.DurationDays,
		Price:        s.Price,
		Description:  s.Description,
		Status:       s.Status,
	}
}

// FromWireSubscription конвертує абонемент основного API
func FromWireSubscription(s *sportapi.Subscription) SubscriptionResponse {
	return FromDomainSubscription(ToDomainSubscription(s))
}

// FromWireSubscriptionList конвертує каталог абонементів
func FromWireSubscriptionList(subs []sportapi.Subscription) *SubscriptionListResponse {
	resp := &SubscriptionListResponse{Subscriptions: make([]SubscriptionResponse, 0, len(subs))}
	for i := range subs {
		resp.Subscriptions = append(resp.Subscriptions, FromWireSubscription(&subs[i]))
	}
	return resp
}

// ToDomainUserSubscription конвертує придбаний абонемент в domain
func ToDomainUserSubscription(s *sportapi.UserSubscription) *domain.UserSubscription {
	return &domain.UserSubscription{
		ID:           s.ID,
		Subscription: ToDomainSubscription(&s.Subscription),
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		IsActive:     s.IsActive,
		IsUsed:       s.IsUsed,
	}
}

// FromDomainUserSubscription будує відповідь із domain-моделі
func FromDomainUserSubscription(s *domain.UserSubscription) UserSubscriptionResponse {
	return UserSubscriptionResponse{
		ID:           s.ID,
		Subscription: FromDomainSubscription(s.Subscription),
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		IsActive:     s.IsActive,
		IsUsed:       s.IsUsed,
	}
}

// FromWireUserSubscription конвертує придбаний абонемент
func FromWireUserSubscription(s *sportapi.UserSubscription) UserSubscriptionResponse {
	return FromDomainUserSubscription(ToDomainUserSubscription(s))
}

// FromWireUserSubscriptionList конвертує список придбаних абонементів
func FromWireUserSubscriptionList(subs []sportapi.UserSubscription) *UserSubscriptionListResponse {
	resp := &UserSubscriptionListResponse{Subscriptions: make([]UserSubscriptionResponse, 0, len(subs))}
	for i := range subs {
		resp.Subscriptions = append(resp.Subscriptions, FromWireUserSubscription(&subs[i]))
	}
	return resp
}
