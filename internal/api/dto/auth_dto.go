package dto

import (
	"time"

	"github.com/spec-kit/sportstats/internal/domain"
)

// TokenRequest payload for the editor login.
type TokenRequest struct {
	Password string `json:"password"`
}

// TokenResponse is returned by POST /auth/token.
type TokenResponse struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}
