package handler

import (
	"time"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/response"
	"go-invoice-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	repo repository.ExpenseRepository
}

func NewExpenseHandler(repo repository.ExpenseRepository) *ExpenseHandler {
	return &ExpenseHandler{repo: repo}
}

// GET /api/v1/expenses
func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	start, end := parseDateRange(c)

	expenses, err := h.repo.FindAll(repository.ExpenseFilter{
		StartDate: start,
		EndDate:   end,
		Category:  c.Query("category"),
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Expenses retrieved successfully", expenses)
}

// GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense ID")
	}

	expense, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Expense retrieved successfully", expense)
}

// POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&expense); err != nil {
		return err
	}

	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	userID := getUserID(c)
	expense.CreatedByID = &userID
	expense.CreatedBy = nil

	if err := h.repo.Create(&expense); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Expense created successfully", expense)
}

// PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense ID")
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	var req model.Expense
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&req); err != nil {
		return err
	}

	existing.Category = req.Category
	existing.Amount = req.Amount
	existing.Description = req.Description
	if !req.Date.IsZero() {
		existing.Date = req.Date
	}
	if req.PaymentMethod != "" {
		existing.PaymentMethod = req.PaymentMethod
	}
	existing.Notes = req.Notes

	if err := h.repo.Update(existing); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Expense updated successfully", existing)
}

// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense ID")
	}

	if _, err := h.repo.FindByID(id); err != nil {
		return err
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Expense deleted successfully", nil)
}
