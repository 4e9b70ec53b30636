package handlers

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/api/dto"
	"github.com/spec-kit/sportstats/internal/service"
	"github.com/spec-kit/sportstats/internal/sinks"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// Report formats accepted by GET /api/report.
const (
	ReportFormatJSON = "json"
	ReportFormatText = "text"
)

// ViewsHandler serves the derived dashboard views.
type ViewsHandler struct {
	views *service.ViewService
}

// NewViewsHandler constructs handler.
func NewViewsHandler(views *service.ViewService) *ViewsHandler {
	return &ViewsHandler{views: views}
}

// Dashboard GET /api/dashboard.
func (h *ViewsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.Dashboard(c.UserContext())})
}

// Summary GET /api/dashboard/summary.
func (h *ViewsHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.Summary(c.UserContext())})
}

// Options GET /api/dashboard/options.
func (h *ViewsHandler) Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.Options(c.UserContext())})
}

// RunsChart GET /api/charts/runs.
func (h *ViewsHandler) RunsChart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.RunsChart(c.UserContext())})
}

// WinRateChart GET /api/charts/win-rate.
func (h *ViewsHandler) WinRateChart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.WinRateChart(c.UserContext())})
}

// RadarChart GET /api/charts/radar.
func (h *ViewsHandler) RadarChart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.RadarChart(c.UserContext())})
}

// Comparison GET /api/charts/comparison?team1=&team2=.
func (h *ViewsHandler) Comparison(c *fiber.Ctx) error {
	var query dto.ComparisonQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	chart, err := h.views.Compare(c.UserContext(), query.Team1, query.Team2)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": chart})
}

// Map GET /api/map.
func (h *ViewsHandler) Map(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.Map(c.UserContext())})
}

// Report GET /api/report?format=json|text.
func (h *ViewsHandler) Report(c *fiber.Ctx) error {
	format := strings.ToLower(strings.TrimSpace(c.Query("format", ReportFormatJSON)))
	switch format {
	case ReportFormatJSON, ReportFormatText:
	default:
		return apperrors.NewValidationError("format must be json or text", map[string]any{"format": format})
	}

	report := h.views.Report(c.UserContext())
	if format == ReportFormatJSON {
		return c.JSON(fiber.Map{"data": report})
	}

	var buf bytes.Buffer
	if err := sinks.WriteTextReport(&buf, report); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(report.Filename("txt"))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}
