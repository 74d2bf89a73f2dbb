package handler

import (
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/response"
	"go-invoice-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	repo repository.SupplierRepository
}

func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

// GET /api/v1/suppliers
func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.repo.FindAll(c.Query("search"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Suppliers retrieved successfully", suppliers)
}

// GET /api/v1/suppliers/:id
func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid supplier ID")
	}

	supplier, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Supplier retrieved successfully", supplier)
}

// POST /api/v1/suppliers
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&supplier); err != nil {
		return err
	}

	if err := h.repo.Create(&supplier); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Supplier created successfully", supplier)
}

// PUT /api/v1/suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid supplier ID")
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&req); err != nil {
		return err
	}

	existing.Name = req.Name
	existing.Company = req.Company
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address
	existing.IsActive = req.IsActive
	existing.Notes = req.Notes

	if err := h.repo.Update(existing); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Supplier updated successfully", existing)
}

// DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid supplier ID")
	}

	if _, err := h.repo.FindByID(id); err != nil {
		return err
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Supplier deleted successfully", nil)
}
