package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/service"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// TeamsHandler manages team endpoints.
type TeamsHandler struct {
	stats *service.StatsService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(stats *service.StatsService) *TeamsHandler {
	return &TeamsHandler{stats: stats}
}

// List GET /api/teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.stats.ListTeams(c.UserContext())})
}

// Get GET /api/teams/:name.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}
	team, err := h.stats.GetTeam(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": team})
}

// Create POST /api/teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var req domain.Team
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	team, err := h.stats.CreateTeam(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": team})
}

// Update PATCH /api/teams/:name.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}
	var patch domain.PartialTeam
	if err := decodeBody(c, &patch); err != nil {
		return err
	}
	team, err := h.stats.UpdateTeam(c.UserContext(), name, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": team})
}

// decodeBody unmarshals a JSON body so unknown fields reach the record's
// extra map.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return apperrors.NewValidationError("request body required", nil)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"reason": err.Error()})
	}
	return nil
}

// nameParam returns the unescaped :name route segment.
func nameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return "", apperrors.NewValidationError("invalid name", nil)
	}
	return name, nil
}
