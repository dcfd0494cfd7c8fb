package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

func TestFromWireLoyalty_WithCard(t *testing.T) {
	wire := &sportapi.Loyalty{
		ID:          7,
		Email:       "user@example.com",
		BonusPoints: 420,
		Card: &sportapi.LoyaltyCard{
			ID: 2, Type: "premium", Benefits: "знижка 10%", BonusMultiplier: 1.5, Price: 2000,
		},
	}

	d := ToDomainLoyalty(wire)
	assert.Equal(t, int64(7), d.UserID)
	require.NotNil(t, d.Card)
	assert.Equal(t, 1.5, d.Card.BonusMultiplier)

	resp := FromWireLoyalty(wire)
	assert.Equal(t, 420, resp.BonusPoints)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "premium", resp.Card.Type)
	assert.Equal(t, float64(2000), resp.Card.Price)
}

func TestFromWireLoyalty_NoCard(t *testing.T) {
	resp := FromWireLoyalty(&sportapi.Loyalty{ID: 7, BonusPoints: 50})

	assert.Equal(t, 50, resp.BonusPoints)
	assert.Nil(t, resp.Card)
}
