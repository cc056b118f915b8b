package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sanjab/internal/repositories"
	"sanjab/internal/services/report"
	"sanjab/internal/utils"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List returns the merchant's transactions with optional date range and
// status filters.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	claims, err := extractMerchantClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	filter := repositories.ReportFilter{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return utils.BadRequest(c, "from must be RFC3339")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return utils.BadRequest(c, "to must be RFC3339")
		}
		filter.To = &t
	}

	summary, err := h.reportService.MerchantReport(c.Context(), claims.MerchantID, filter)
	if err != nil {
		return utils.InternalError(c, "Failed to build report")
	}
	return utils.Success(c, summary)
}
