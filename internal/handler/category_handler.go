package handler

import (
	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/response"
	"go-invoice-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.repo.FindAll()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category ID")
	}

	category, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&category); err != nil {
		return err
	}

	if existing, _ := h.repo.FindByName(category.Name); existing != nil {
		return apperr.ErrDuplicate
	}

	if err := h.repo.Create(&category); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Category created successfully", category)
}

// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category ID")
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&req); err != nil {
		return err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.IsActive = req.IsActive

	if err := h.repo.Update(existing); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Category updated successfully", existing)
}

// DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category ID")
	}

	if _, err := h.repo.FindByID(id); err != nil {
		return err
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Category deleted successfully", nil)
}
