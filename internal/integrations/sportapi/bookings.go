package sportapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AvailableTimeslots повертає слоти для залу АБО секції.
// Поля доступності (available_seats, is_booked, has_sections) заповнює
// бекенд; клієнт передає їх без перерахунку.
func (c *Client) AvailableTimeslots(ctx context.Context, hallID, sectionID *int64) ([]TimeSlot, error) {
	q := url.Values{}
	if hallID != nil {
		q.Set("hall_id", strconv.FormatInt(*hallID, 10))
	}
	if sectionID != nil {
		q.Set("section_id", strconv.FormatInt(*sectionID, 10))
	}

	var slots []TimeSlot
	if err := c.do(ctx, http.MethodGet, withQuery("/available-timeslots/", q), "", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateBooking надсилає намір бронювання
func (c *Client) CreateBooking(ctx context.Context, accessToken string, req CreateBookingRequest) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings/create/", accessToken, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyReservations повертає бронювання поточного користувача, найновіші першими
func (c *Client) MyReservations(ctx context.Context, accessToken string) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, "/bookings/my/", accessToken, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// AllReservations повертає всі бронювання (адмінський перегляд)
func (c *Client) AllReservations(ctx context.Context, accessToken string) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations/", accessToken, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservation повертає бронювання за ID
func (c *Client) GetReservation(ctx context.Context, accessToken string, id int64) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d/", id), accessToken, nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// PatchReservation змінює статуси бронювання (скасування, підтвердження адміном)
func (c *Client) PatchReservation(ctx context.Context, accessToken string, id int64, patch ReservationStatusPatch) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/reservations/%d/", id), accessToken, patch, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}
