package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/api/dto"
	"github.com/spec-kit/sportstats/internal/service"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// importFormField is the multipart field carrying an import file.
const importFormField = "file"

// DataHandler serves sample data, export and import.
type DataHandler struct {
	stats *service.StatsService
}

// NewDataHandler constructs handler.
func NewDataHandler(stats *service.StatsService) *DataHandler {
	return &DataHandler{stats: stats}
}

// Sample POST /api/sample.
func (h *DataHandler) Sample(c *fiber.Ctx) error {
	added, err := h.stats.AddSampleData(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SampleResponse{Added: added}})
}

// Export GET /api/export downloads the export document.
func (h *DataHandler) Export(c *fiber.Ctx) error {
	doc, filename := h.stats.Export(c.UserContext())
	body, err := doc.Encode()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// Import POST /api/import accepts a raw JSON body or a multipart "file".
func (h *DataHandler) Import(c *fiber.Ctx) error {
	raw, err := importBody(c)
	if err != nil {
		return err
	}
	result, err := h.stats.Import(c.UserContext(), raw)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ImportResponse{
		Teams:   result.Teams,
		Players: result.Players,
		Skipped: result.Skipped,
	}})
}

func importBody(c *fiber.Ctx) ([]byte, error) {
	contentType := string(c.Request().Header.ContentType())
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return c.Body(), nil
	}
	header, err := c.FormFile(importFormField)
	if err != nil {
		return nil, apperrors.NewValidationError("multipart field \"file\" required", nil)
	}
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return raw, nil
}
