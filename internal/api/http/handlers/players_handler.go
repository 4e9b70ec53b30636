package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/service"
)

// PlayersHandler manages player endpoints.
type PlayersHandler struct {
	stats *service.StatsService
}

// NewPlayersHandler constructs handler.
func NewPlayersHandler(stats *service.StatsService) *PlayersHandler {
	return &PlayersHandler{stats: stats}
}

// List GET /api/players?team=. An empty team or "all" lists everyone.
func (h *PlayersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.stats.ListPlayers(c.UserContext(), c.Query("team"))})
}

// Get GET /api/players/:name.
func (h *PlayersHandler) Get(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}
	player, err := h.stats.GetPlayer(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": player})
}

// Create POST /api/players.
func (h *PlayersHandler) Create(c *fiber.Ctx) error {
	var req domain.Player
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	player, err := h.stats.CreatePlayer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": player})
}

// Update PATCH /api/players/:name.
func (h *PlayersHandler) Update(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}
	var patch domain.PartialPlayer
	if err := decodeBody(c, &patch); err != nil {
		return err
	}
	player, err := h.stats.UpdatePlayer(c.UserContext(), name, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": player})
}
