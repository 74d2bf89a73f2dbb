package handler

import (
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /api/v1/reports/dashboard
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.reportService.GetDashboardStats()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GET /api/v1/reports/sales?groupBy=daily|monthly&startDate=&endDate=
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	groupBy := c.Query("groupBy")
	switch groupBy {
	case "", "daily", "monthly":
	default:
		return fiber.NewError(fiber.StatusBadRequest, "groupBy must be daily or monthly")
	}

	start, end := parseDateRange(c)
	report, err := h.reportService.GetSalesReport(groupBy, start, end)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Sales report retrieved successfully", report)
}

// GET /api/v1/reports/profit?startDate=&endDate=
func (h *ReportHandler) GetProfitReport(c *fiber.Ctx) error {
	start, end := parseDateRange(c)
	report, err := h.reportService.GetProfitReport(start, end)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profit report retrieved successfully", report)
}

// GET /api/v1/reports/expenses?startDate=&endDate=
func (h *ReportHandler) GetExpenseReport(c *fiber.Ctx) error {
	start, end := parseDateRange(c)
	report, err := h.reportService.GetExpenseReport(start, end)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Expense report retrieved successfully", report)
}
