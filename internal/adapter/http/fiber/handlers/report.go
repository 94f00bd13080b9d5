package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/ports"
)

type ReportHandler struct {
	service ports.ReportService
	log     *zap.Logger
}

func NewReportHandler(service ports.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

type GenerateReportRequest struct {
	DataID       string  `json:"data_id"`
	CompanyName  string  `json:"company_name"`
	FacilityName string  `json:"facility_name"`
	Address      string  `json:"address"`
	Filename     string  `json:"filename"`
	TariffRate   float64 `json:"tariff_rate"`
}

// Generate runs one report cycle and returns the rendered view.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if _, err := uuid.Parse(req.DataID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "data_id must be a valid UUID"})
	}

	view, err := h.service.Generate(c.Context(), domain.ReportRequest{
		DataID:       req.DataID,
		CompanyName:  req.CompanyName,
		FacilityName: req.FacilityName,
		Address:      req.Address,
		Filename:     req.Filename,
		TariffRate:   req.TariffRate,
	})
	if err != nil {
		h.log.Warn("Report generation failed",
			zap.String("data_id", req.DataID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view)
}

// Latest returns the most recently settled rendered report.
func (h *ReportHandler) Latest(c *fiber.Ctx) error {
	view, ok := h.service.Latest()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No report generated yet"})
	}
	return c.JSON(view)
}
