package sportapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListSubscriptions повертає активні абонементи, доступні для покупки
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions/", "", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// PurchaseSubscription купує абонемент для поточного користувача
func (c *Client) PurchaseSubscription(ctx context.Context, accessToken string, subscriptionID int64) (*PurchaseResponse, error) {
	var resp PurchaseResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/subscriptions/%d/purchase/", subscriptionID), accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MySubscriptions повертає дійсні абонементи поточного користувача
func (c *Client) MySubscriptions(ctx context.Context, accessToken string) ([]UserSubscription, error) {
	var subs []UserSubscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions/my/", accessToken, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetLoyalty повертає бали та картку лояльності поточного користувача
func (c *Client) GetLoyalty(ctx context.Context, accessToken string) (*Loyalty, error) {
	var loyalty Loyalty
	if err := c.do(ctx, http.MethodGet, "/loyalty/me/", accessToken, nil, &loyalty); err != nil {
		return nil, err
	}
	return &loyalty, nil
}

// RedeemPoints списує бонусні бали на рахунок бронювання
func (c *Client) RedeemPoints(ctx context.Context, accessToken string, req RedeemRequest) (*RedeemResult, error) {
	var result RedeemResult
	if err := c.do(ctx, http.MethodPost, "/loyalty/redeem/", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
