package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// parseDateRange reads optional startDate/endDate query params (YYYY-MM-DD).
// Both must be present to form a window; the end is pushed to end-of-day.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		return nil, nil
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return nil, nil
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return nil, nil
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	return &start, &end
}
