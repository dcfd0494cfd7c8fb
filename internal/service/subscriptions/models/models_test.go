package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

func TestFromWireUserSubscriptionList(t *testing.T) {
	subs := []sportapi.UserSubscription{
		{
			ID: 11,
			Subscription: sportapi.Subscription{
				ID: 3, Type: "monthly", DurationDays: 30, Price: 1200, Status: "active",
			},
			StartDate: "2026-08-01",
			EndDate:   "2026-08-31",
			IsActive:  true,
		},
	}

	d := ToDomainUserSubscription(&subs[0])
	assert.Equal(t, "monthly", d.Subscription.Type)
	assert.True(t, d.IsActive)

	resp := FromWireUserSubscriptionList(subs)
	require.Len(t, resp.Subscriptions, 1)
	got := resp.Subscriptions[0]
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, int64(3), got.Subscription.ID)
	assert.Equal(t, 30, got.Subscription.DurationDays)
	assert.Equal(t, "2026-08-31", got.EndDate)
	assert.False(t, got.IsUsed)
}
