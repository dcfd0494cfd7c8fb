package sportapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListNotifications повертає сповіщення користувача та лічильник непрочитаних
func (c *Client) ListNotifications(ctx context.Context, accessToken string) (*NotificationList, error) {
	var list NotificationList
	if err := c.do(ctx, http.MethodGet, "/notifications/", accessToken, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MarkNotificationRead позначає сповіщення як прочитане
func (c *Client) MarkNotificationRead(ctx context.Context, accessToken string, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/notifications/%d/read/", id), accessToken, nil, nil)
}

// MarkAllNotificationsRead позначає всі сповіщення користувача як прочитані
func (c *Client) MarkAllNotificationsRead(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPatch, "/notifications/mark-all-read/", accessToken, nil, nil)
}
