package handler

import (
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// CreateSale posts a sale transaction
// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	sale, err := h.service.CreateSale(&req, getUserID(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Sale created successfully", sale)
}

// GetSales lists sales with optional date/customer/status filters
// GET /api/v1/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	filter := repository.SaleFilter{PaymentStatus: c.Query("paymentStatus")}
	filter.StartDate, filter.EndDate = parseDateRange(c)
	if raw := c.Query("customer"); raw != "" {
		if id, err := parseUUID(raw); err == nil {
			filter.CustomerID = &id
		}
	}

	sales, err := h.service.GetAllSales(filter)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Sales retrieved successfully", sales)
}

// GetSale returns one sale with items, customer, and cashier resolved
// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sale ID")
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Sale retrieved successfully", sale)
}

// GetSaleByInvoice finds a sale by its document number
// GET /api/v1/sales/invoice/:invoiceNumber
func (h *SaleHandler) GetSaleByInvoice(c *fiber.Ctx) error {
	sale, err := h.service.GetSaleByInvoiceNumber(c.Params("invoiceNumber"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Sale retrieved successfully", sale)
}

// AddPayment records a payment top-up against a sale
// POST /api/v1/sales/:id/payment
func (h *SaleHandler) AddPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sale ID")
	}

	var req service.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	sale, err := h.service.AddPayment(id, &req, getUserID(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Payment added successfully", sale)
}

// GetPayments lists the payment history of a sale
// GET /api/v1/sales/:id/payments
func (h *SaleHandler) GetPayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sale ID")
	}

	payments, err := h.service.GetPayments(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Payments retrieved successfully", payments)
}
