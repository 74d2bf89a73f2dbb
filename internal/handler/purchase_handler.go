package handler

import (
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// CreatePurchase records a stock receipt from a supplier
// POST /api/v1/purchases
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	purchase, err := h.service.CreatePurchase(&req, getUserID(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Purchase created successfully", purchase)
}

// GetPurchases lists purchases with optional date/supplier/status filters
// GET /api/v1/purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	filter := repository.PurchaseFilter{PaymentStatus: c.Query("paymentStatus")}
	filter.StartDate, filter.EndDate = parseDateRange(c)
	if raw := c.Query("supplier"); raw != "" {
		if id, err := parseUUID(raw); err == nil {
			filter.SupplierID = &id
		}
	}

	purchases, err := h.service.GetAllPurchases(filter)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Purchases retrieved successfully", purchases)
}

// GetPurchase returns one purchase with items and supplier resolved
// GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase ID")
	}

	purchase, err := h.service.GetPurchaseByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Purchase retrieved successfully", purchase)
}

// AddPayment records a payment top-up against a purchase
// POST /api/v1/purchases/:id/payment
func (h *PurchaseHandler) AddPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase ID")
	}

	var req service.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	purchase, err := h.service.AddPayment(id, &req, getUserID(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Payment added successfully", purchase)
}

// GetPayments lists the payment history of a purchase
// GET /api/v1/purchases/:id/payments
func (h *PurchaseHandler) GetPayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase ID")
	}

	payments, err := h.service.GetPayments(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Payments retrieved successfully", payments)
}
