package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/api/dto"
	"github.com/spec-kit/sportstats/internal/service"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// AuthHandler issues editor tokens.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}

	signed, token, err := h.auth.LoginEditor(c.UserContext(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TokenResponse{
		Token:     signed,
		Role:      token.Role,
		ExpiresAt: token.ExpiresAt,
	}})
}
