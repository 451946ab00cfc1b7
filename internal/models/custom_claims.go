package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the RS256 JWT payload. TokenType distinguishes access from
// refresh tokens so one can never be presented as the other; the registered
// ID (JTI) is what logout blacklists.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
