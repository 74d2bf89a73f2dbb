package handler

import (
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists products with optional search/category/lowStock filters
// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search:   c.Query("search"),
		LowStock: c.Query("lowStock") == "true",
	}
	if raw := c.Query("category"); raw != "" {
		if id, err := parseUUID(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("isActive"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}

	products, err := h.service.GetAllProducts(filter)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Products retrieved successfully", products)
}

// GetProduct returns one product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Product retrieved successfully", product)
}

// GetProductByBarcode looks a product up by its barcode
// GET /api/v1/products/barcode/:barcode
func (h *ProductHandler) GetProductByBarcode(c *fiber.Ctx) error {
	product, err := h.service.GetProductByBarcode(c.Params("barcode"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Product retrieved successfully", product)
}

// CreateProduct creates a product
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Product created successfully", product)
}

// UpdateProduct replaces a product's fields
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, &product)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Product updated successfully", updated)
}

// DeleteProduct removes a product (admin only)
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Product deleted successfully", nil)
}

// UpdateStock applies a manual add/subtract stock operation
// PUT /api/v1/products/:id/stock
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	var req service.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	product, err := h.service.AdjustStock(id, &req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Stock updated successfully", product)
}
