package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

func TestFromWireNotificationList(t *testing.T) {
	sent := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	list := &sportapi.NotificationList{
		Notifications: []sportapi.Notification{
			{ID: 1, NotificationType: "reminder", Message: "Заняття завтра", DateTime: sent},
			{ID: 2, NotificationType: "bonus", Message: "Нараховано бали", DateTime: sent, IsRead: true},
		},
		UnreadCount: 1,
	}

	d := ToDomainNotification(&list.Notifications[0])
	assert.Equal(t, domain.NotificationReminder, d.Type)
	assert.Equal(t, sent, d.SentAt)

	resp := FromWireNotificationList(list)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)
	assert.Equal(t, "reminder", resp.Notifications[0].Type)
	assert.Equal(t, "2026-09-01 14:30", resp.Notifications[0].Date)
	assert.False(t, resp.Notifications[0].IsRead)
	assert.True(t, resp.Notifications[1].IsRead)
}
