package sportapi

import (
	"context"
	"net/http"
)

// Login виконує вхід через email, повертає пару токенів та профіль
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register реєструє нового користувача і одразу повертає токени для входу
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile отримує профіль поточного користувача
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/auth/profile/", accessToken, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile частково оновлює профіль поточного користувача
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, upd ProfileUpdate) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodPut, "/auth/profile/", accessToken, upd, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
