package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	apimodels "talenttrek-backend/models/api"
)

func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}
		size := int64(len(c.Body()))
		if contentLength := c.Get(fiber.HeaderContentLength); contentLength != "" {
			if declared, err := strconv.ParseInt(contentLength, 10, 64); err == nil && declared > size {
				size = declared
			}
		}
		if size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
				fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
