package handler

import (
	"quiz-forge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API endpoints on router (normally the /api group).
func RegisterRoutes(router fiber.Router, generator *GeneratorHandler, health *HealthHandler) {
	router.Get("/health", health.Health)

	requireJSON := middleware.RequireJSON()
	router.Post("/keywords", requireJSON, generator.ExtractKeywords)
	router.Post("/generate", requireJSON, generator.Generate)
	router.Post("/generate/batch", requireJSON, generator.GenerateBatch)
}
