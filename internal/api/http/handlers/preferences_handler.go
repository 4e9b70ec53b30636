package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/api/dto"
	"github.com/spec-kit/sportstats/internal/service"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

const themeToggle = "toggle"

// PreferencesHandler reads and changes the dashboard theme.
type PreferencesHandler struct {
	prefs *service.PreferencesService
}

// NewPreferencesHandler constructs handler.
func NewPreferencesHandler(prefs *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// GetTheme GET /api/preferences/theme.
func (h *PreferencesHandler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.ThemeResponse{Theme: h.prefs.Theme(c.UserContext())}})
}

// PutTheme PUT /api/preferences/theme.
func (h *PreferencesHandler) PutTheme(c *fiber.Ctx) error {
	var req dto.ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ctx := c.UserContext()
	if strings.EqualFold(strings.TrimSpace(req.Theme), themeToggle) {
		return c.JSON(fiber.Map{"data": dto.ThemeResponse{Theme: h.prefs.ToggleTheme(ctx)}})
	}
	theme, err := h.prefs.SetTheme(ctx, req.Theme)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ThemeResponse{Theme: theme}})
}
