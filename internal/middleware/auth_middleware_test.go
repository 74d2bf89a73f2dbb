package middleware

import (
	"net/http/httptest"
	"testing"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) { return s.find() }
func (s *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error)    { return s.find() }
func (s *stubUserRepo) Create(*model.User) error                      { return nil }
func (s *stubUserRepo) Update(*model.User) error                      { return nil }
func (s *stubUserRepo) UpdatePassword(uuid.UUID, string) error        { return nil }
func (s *stubUserRepo) UpdateStatus(uuid.UUID, bool) error            { return nil }
func (s *stubUserRepo) FindAll() ([]model.User, error)                { return nil, nil }
func (s *stubUserRepo) UpdateLastLogin(uuid.UUID) error               { return nil }

func (s *stubUserRepo) find() (*model.User, error) {
	if s.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func newAuthTestApp(repo *stubUserRepo, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(repo)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", handlers...)
	return app
}

func activeUser(role model.UserRole) *model.User {
	u := &model.User{Role: role, IsActive: true}
	u.ID = uuid.New()
	return u
}

func bearerFor(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(u.ID, "user@example.com", "User", string(u.Role))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireAuthMissingToken(t *testing.T) {
	app := newAuthTestApp(&stubUserRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := newAuthTestApp(&stubUserRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp(&stubUserRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := activeUser(model.RoleCashier)
	app := newAuthTestApp(&stubUserRepo{user: user})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuthDeactivatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := activeUser(model.RoleCashier)
	user.IsActive = false
	app := newAuthTestApp(&stubUserRepo{user: user})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cashier := activeUser(model.RoleCashier)
	app := newAuthTestApp(&stubUserRepo{user: cashier}, RequireRole(model.RoleAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, cashier))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := activeUser(model.RoleAdmin)
	app = newAuthTestApp(&stubUserRepo{user: admin}, RequireRole(model.RoleAdmin))

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, admin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
