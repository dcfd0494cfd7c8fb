package sportapi

import (
	"context"
	"fmt"
	"net/http"
)

// Адмінські proxy-виклики керування сутностями. Правила доступу перевіряє
// основний API; шлюз лише вимагає staff-сесію в middleware.

// CreateHall створює зал
func (c *Client) CreateHall(ctx context.Context, accessToken string, payload HallPayload) (*Hall, error) {
	var hall Hall
	if err := c.do(ctx, http.MethodPost, "/halls/", accessToken, payload, &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// UpdateHall оновлює зал
func (c *Client) UpdateHall(ctx context.Context, accessToken string, id int64, payload HallPayload) (*Hall, error) {
	var hall Hall
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/halls/%d/", id), accessToken, payload, &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// DeleteHall видаляє зал
func (c *Client) DeleteHall(ctx context.Context, accessToken string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/halls/%d/", id), accessToken, nil, nil)
}

// CreateSection створює секцію
func (c *Client) CreateSection(ctx context.Context, accessToken string, payload SectionPayload) (*Section, error) {
	var section Section
	if err := c.do(ctx, http.MethodPost, "/sections/", accessToken, payload, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// UpdateSection оновлює секцію
func (c *Client) UpdateSection(ctx context.Context, accessToken string, id int64, payload SectionPayload) (*Section, error) {
	var section Section
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/sections/%d/", id), accessToken, payload, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection видаляє секцію
func (c *Client) DeleteSection(ctx context.Context, accessToken string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/sections/%d/", id), accessToken, nil, nil)
}

// AddScheduleSlot додає слот до розкладу секції
func (c *Client) AddScheduleSlot(ctx context.Context, accessToken string, payload SchedulePayload) error {
	return c.do(ctx, http.MethodPost, "/timeslots/create/", accessToken, payload, nil)
}

// RemoveScheduleSlot прибирає слот з розкладу секції
func (c *Client) RemoveScheduleSlot(ctx context.Context, accessToken string, scheduleID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/schedule/%d/", scheduleID), accessToken, nil, nil)
}
