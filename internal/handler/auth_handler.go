package handler

import (
	"go-invoice-pos/internal/service"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Login successful", result)
}

// Register creates a new user (admin only)
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	result, err := h.authService.Register(&req)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated, "User registered successfully", result)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetMe(getUserID(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "User retrieved successfully", user)
}

// UpdatePassword changes the caller's password and reissues a token
// PUT /api/v1/auth/password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	token, err := h.authService.UpdatePassword(getUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Password updated successfully", fiber.Map{"token": token})
}

// GetUsers lists all users (admin only)
// GET /api/v1/auth/users
func (h *AuthHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.authService.GetAllUsers()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// UpdateUserStatus toggles an account (admin only)
// PUT /api/v1/auth/users/:id/status
func (h *AuthHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if req.IsActive == nil {
		return fiber.NewError(fiber.StatusBadRequest, "is_active is required")
	}

	user, err := h.authService.UpdateUserStatus(id, *req.IsActive)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "User status updated successfully", user)
}
