package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Hour)))
	assert.True(t, s.Expired(now.Add(2*time.Hour)))
}
