package middleware

import (
	"strings"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/jwt"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer token and sets user info in context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Fail(c, fiber.StatusUnauthorized, "Missing authorization token", nil)
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return response.Fail(c, fiber.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>", nil)
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return response.Fail(c, fiber.StatusUnauthorized, "Invalid or expired token", nil)
		}

		// The token may outlive a deactivation; check the account state.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return response.Fail(c, fiber.StatusUnauthorized, "User not found", nil)
		}
		if !user.IsActive {
			return response.Fail(c, fiber.StatusUnauthorized, "User account is deactivated", nil)
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", string(user.Role))

		return c.Next()
	}
}

// RequireRole allows only the listed roles through.
func RequireRole(roles ...model.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return response.Fail(c, fiber.StatusForbidden, "No role found", nil)
		}

		for _, allowed := range roles {
			if role == string(allowed) {
				return c.Next()
			}
		}

		return response.Fail(c, fiber.StatusForbidden,
			"Forbidden: role '"+role+"' is not authorized for this action", nil)
	}
}
