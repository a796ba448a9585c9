package middleware

import (
	"quiz-forge/internal/domain"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireJSON rejects requests whose body is not declared as JSON.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentType := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
		if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return domain.ValidationErrors{
				domain.NewInvalidFormatError("Content-Type", c.Get(fiber.HeaderContentType)),
			}
		}
		return c.Next()
	}
}
