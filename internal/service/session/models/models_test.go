package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

func TestFromWireProfile_WithCard(t *testing.T) {
	wire := &sportapi.UserProfile{
		ID:          7,
		Email:       "user@example.com",
		FirstName:   "Соломія",
		LastName:    "Сидорик",
		Age:         ptr.Ptr(28),
		Photo:       ptr.Ptr("https://cdn.example.com/u/7.jpg"),
		BonusPoints: 120,
		Card: &sportapi.LoyaltyCard{
			ID: 2, Type: "standard", BonusMultiplier: 1.2, Price: 500,
		},
		IsStaff: true,
	}

	d := ToDomainProfile(wire)
	require.NotNil(t, d.PhotoURL)
	assert.Equal(t, "https://cdn.example.com/u/7.jpg", *d.PhotoURL)
	require.NotNil(t, d.Card)
	assert.Equal(t, float64(500), d.Card.Price)

	resp := FromWireProfile(wire)
	assert.Equal(t, "Соломія", resp.FirstName)
	assert.Equal(t, 120, resp.BonusPoints)
	assert.True(t, resp.IsStaff)
	require.NotNil(t, resp.Card)
	assert.Equal(t, 1.2, resp.Card.BonusMultiplier)
}

func TestFromWireProfile_Minimal(t *testing.T) {
	resp := FromWireProfile(&sportapi.UserProfile{ID: 1, Email: "new@example.com"})

	assert.Equal(t, int64(1), resp.ID)
	assert.Nil(t, resp.Card)
	assert.Nil(t, resp.Photo)
	assert.False(t, resp.IsStaff)
}
