package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistedToken_IsExpired(t *testing.T) {
	live := BlacklistedToken{ExpiresAt: time.Now().Add(time.Hour)}
	dead := BlacklistedToken{ExpiresAt: time.Now().Add(-time.Hour)}

	assert.False(t, live.IsExpired())
	assert.True(t, dead.IsExpired())
}

func TestBlacklistedToken_CanBeDeleted(t *testing.T) {
	// A blacklist row must stay until the JWT it blocks has expired on its own
	blocking := BlacklistedToken{ExpiresAt: time.Now().Add(time.Hour)}
	stale := BlacklistedToken{ExpiresAt: time.Now().Add(-time.Hour)}

	assert.False(t, blocking.CanBeDeleted())
	assert.True(t, stale.CanBeDeleted())
}
