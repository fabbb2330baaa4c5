package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/services/report"
	"standsreg/internal/utils"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ApplicationsByStatus counts applications per status.
func (h *ReportHandler) ApplicationsByStatus(c *fiber.Ctx) error {
	counts, err := h.reportService.ApplicationsByStatus()
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, counts)
}

// PaymentsSummary totals all recorded payments.
func (h *ReportHandler) PaymentsSummary(c *fiber.Ctx) error {
	summary, err := h.reportService.PaymentsSummary()
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, summary)
}
