package service

import (
	"context"
	"strings"

	"github.com/spec-kit/sportstats/internal/auth"
	"github.com/spec-kit/sportstats/internal/config"
	"github.com/spec-kit/sportstats/internal/domain"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// EditorSubject is the token subject issued to the editor.
const EditorSubject = "editor"

// AuthService issues editor tokens when editor auth is enabled.
type AuthService struct {
	tokenMgr     *auth.TokenManager
	passwordHash string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		passwordHash: strings.TrimSpace(cfg.EditorPasswordHash),
	}
}

// Enabled reports whether mutating routes require a token.
func (s *AuthService) Enabled() bool {
	return s.passwordHash != ""
}

// LoginEditor checks password and returns a signed editor token.
func (s *AuthService) LoginEditor(_ context.Context, password string) (string, domain.Token, error) {
	if !s.Enabled() {
		return "", domain.Token{}, apperrors.NewForbidden("editor authentication is disabled")
	}
	if err := auth.ComparePassword(s.passwordHash, password); err != nil {
		return "", domain.Token{}, apperrors.NewUnauthorized("invalid credentials")
	}
	signed, token, err := s.tokenMgr.GenerateToken(EditorSubject, domain.RoleEditor)
	if err != nil {
		return "", domain.Token{}, apperrors.NewInternalError(err)
	}
	return signed, token, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
