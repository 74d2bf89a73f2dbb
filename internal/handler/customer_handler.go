package handler

import (
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"
	"go-invoice-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler works against the repository directly; customers are
// plain CRUD apart from the aggregates the sale path maintains.
type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// GET /api/v1/customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.repo.FindAll(c.Query("search"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Customers retrieved successfully", customers)
}

// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Customer retrieved successfully", customer)
}

// POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&customer); err != nil {
		return err
	}

	if err := h.repo.Create(&customer); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Customer created successfully", customer)
}

// PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&req); err != nil {
		return err
	}

	// The running aggregates belong to the transaction path, never to
	// profile edits.
	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address
	existing.IsActive = req.IsActive
	existing.Notes = req.Notes

	if err := h.repo.Update(existing); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Customer updated successfully", existing)
}

// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	if customer.Phone == service.WalkInPhone {
		return fiber.NewError(fiber.StatusBadRequest, "The walk-in customer cannot be deleted")
	}

	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Customer deleted successfully", nil)
}
