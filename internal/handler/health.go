package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	cacheStatusDisabled = "disabled"
	cacheStatusUp       = "up"
	cacheStatusDown     = "down"
)

// HealthHandler reports liveness and cache connectivity
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is disabled.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Service health
// @Description The service stays "ok" when the cache is down; generation works without it.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: cacheStatusDisabled}
	if h.cache != nil {
		if err := h.cache.Ping(c.UserContext()); err != nil {
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			resp.Cache = cacheStatusDown
		} else {
			resp.Cache = cacheStatusUp
		}
	}
	return c.JSON(resp)
}
