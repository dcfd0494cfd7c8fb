package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// NotificationResponse сповіщення користувача
type NotificationResponse struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"` // "reminder" | "promo" | "bonus"
	Message string `json:"message"`
	Date    string `json:"date"`
	IsRead  bool   `json:"isRead"`
}

// NotificationListResponse сповіщення з лічильником непрочитаних
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToDomainNotification конвертує wire-модель сповіщення в domain
func ToDomainNotification(n *sportapi.Notification) *domain.Notification {
	return &domain.Notification{
		ID:      n.ID,
		Type:    domain.NotificationType(n.NotificationType),
		Message: n.Message,
		IsRead:  n.IsRead,
		SentAt:  n.DateTime,
	}
}

// FromDomainNotification будує відповідь із domain-моделі сповіщення
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:      n.ID,
		Type:    string(n.Type),
		Message: n.Message,
		Date:    n.SentAt.Format("2006-01-02 15:04"),
		IsRead:  n.IsRead,
	}
}

// FromWireNotificationList конвертує відповідь основного API
func FromWireNotificationList(list *sportapi.NotificationList) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list.Notifications)),
		UnreadCount:   list.UnreadCount,
	}
	for i := range list.Notifications {
		resp.Notifications = append(resp.Notifications, FromDomainNotification(ToDomainNotification(&list.Notifications[i])))
	}
	return resp
}
