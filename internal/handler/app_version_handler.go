package handler

import (
	"time"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/response"
	"go-invoice-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AppVersionHandler struct {
	repo repository.AppVersionRepository
}

func NewAppVersionHandler(repo repository.AppVersionRepository) *AppVersionHandler {
	return &AppVersionHandler{repo: repo}
}

// GET /api/v1/app-versions/latest?platform=android|windows
func (h *AppVersionHandler) GetLatest(c *fiber.Ctx) error {
	platform := c.Query("platform")
	if platform != "android" && platform != "windows" {
		return fiber.NewError(fiber.StatusBadRequest, "platform must be android or windows")
	}

	version, err := h.repo.FindLatest(platform)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Latest version retrieved successfully", version)
}

// GET /api/v1/app-versions?platform=
func (h *AppVersionHandler) GetVersions(c *fiber.Ctx) error {
	versions, err := h.repo.FindAll(c.Query("platform"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Versions retrieved successfully", versions)
}

// POST /api/v1/app-versions (admin)
func (h *AppVersionHandler) CreateVersion(c *fiber.Ctx) error {
	var version model.AppVersion
	if err := c.BodyParser(&version); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := validator.Validate(&version); err != nil {
		return err
	}

	if version.ReleaseDate.IsZero() {
		version.ReleaseDate = time.Now()
	}

	if err := h.repo.Create(&version); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Version published successfully", version)
}
