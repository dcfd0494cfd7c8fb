package sportapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListHalls повертає активні зали з опційними фільтрами каталогу
func (c *Client) ListHalls(ctx context.Context, eventType *string, capacity *int) ([]Hall, error) {
	q := url.Values{}
	if eventType != nil {
		q.Set("event_type", *eventType)
	}
	if capacity != nil {
		q.Set("capacity", strconv.Itoa(*capacity))
	}

	var halls []Hall
	if err := c.do(ctx, http.MethodGet, withQuery("/halls/", q), "", nil, &halls); err != nil {
		return nil, err
	}
	return halls, nil
}

// GetHall повертає зал за ID
func (c *Client) GetHall(ctx context.Context, id int64) (*Hall, error) {
	var hall Hall
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/halls/%d/", id), "", nil, &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// ListSections повертає секції з опційними фільтрами каталогу
func (c *Client) ListSections(ctx context.Context, sportType, preparationLevel, ageCategory *string, hallID *int64) ([]Section, error) {
	q := url.Values{}
	if sportType != nil {
		q.Set("sport_type", *sportType)
	}
	if preparationLevel != nil {
		q.Set("preparation_level", *preparationLevel)
	}
	if ageCategory != nil {
		q.Set("age_category", *ageCategory)
	}
	if hallID != nil {
		q.Set("hall", strconv.FormatInt(*hallID, 10))
	}

	var sections []Section
	if err := c.do(ctx, http.MethodGet, withQuery("/sections/", q), "", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSection повертає секцію за ID
func (c *Client) GetSection(ctx context.Context, id int64) (*Section, error) {
	var section Section
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sections/%d/", id), "", nil, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// ListTrainers повертає список тренерів
func (c *Client) ListTrainers(ctx context.Context) ([]Trainer, error) {
	var trainers []Trainer
	if err := c.do(ctx, http.MethodGet, "/trainers/", "", nil, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
