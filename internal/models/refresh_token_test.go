package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_IsExpired(t *testing.T) {
	live := RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	dead := RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}

	assert.False(t, live.IsExpired())
	assert.True(t, dead.IsExpired())
}

func TestRefreshToken_IsRevoked(t *testing.T) {
	now := time.Now()

	fresh := RefreshToken{RevokedAt: nil}
	spent := RefreshToken{RevokedAt: &now}

	assert.False(t, fresh.IsRevoked())
	assert.True(t, spent.IsRevoked())
}

func TestRefreshToken_IsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token RefreshToken
		valid bool
	}{
		{
			name: "live and unspent",
			token: RefreshToken{
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: nil,
			},
			valid: true,
		},
		{
			name: "expired",
			token: RefreshToken{
				ExpiresAt: time.Now().Add(-time.Hour),
				RevokedAt: nil,
			},
			valid: false,
		},
		{
			name: "revoked by rotation",
			token: RefreshToken{
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: &now,
			},
			valid: false,
		},
		{
			name: "expired and revoked",
			token: RefreshToken{
				ExpiresAt: time.Now().Add(-time.Hour),
				RevokedAt: &now,
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.token.IsValid())
		})
	}
}

func TestRefreshToken_Revoke(t *testing.T) {
	token := RefreshToken{
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: nil,
	}

	token.Revoke()

	assert.NotNil(t, token.RevokedAt)
	assert.True(t, token.IsRevoked())
	assert.False(t, token.IsValid(), "a revoked token must not be exchangeable even before expiry")
}
