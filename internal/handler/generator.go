package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeneratorHandler handles question generation HTTP requests
type GeneratorHandler struct {
	service service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler instance
func NewGeneratorHandler(service service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{
		service: service,
	}
}

// Generate godoc
// @Summary Generate questions from text
// @Description Extracts keywords and builds two assignment questions and three multiple-choice questions. Blank text yields a warning and no questions.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Source text"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *GeneratorHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object with a text field")
	}

	resp, err := h.service.Generate(c.UserContext(), &req)
	if err != nil {
		return err
	}
	if resp.Skipped() {
		logger.Get().Debug("Generation skipped for blank input")
	}

	return c.JSON(resp)
}

// GenerateBatch godoc
// @Summary Generate questions for several texts
// @Description Runs generation for every document; results are returned in request order.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.BatchGenerateRequest true "Documents"
// @Success 200 {object} dto.BatchGenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate/batch [post]
func (h *GeneratorHandler) GenerateBatch(c *fiber.Ctx) error {
	var req dto.BatchGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object with a documents array")
	}

	resp, err := h.service.GenerateBatch(c.UserContext(), &req)
	if err != nil {
		logger.Get().Error("Batch generation failed", zap.Error(err), zap.Int("documents", len(req.Documents)))
		return err
	}

	return c.JSON(resp)
}

// ExtractKeywords godoc
// @Summary Extract keywords
// @Description Returns the most frequent words of five or more letters, most frequent first.
// @Tags keywords
// @Accept json
// @Produce json
// @Param request body dto.KeywordsRequest true "Source text"
// @Success 200 {object} dto.KeywordsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /keywords [post]
func (h *GeneratorHandler) ExtractKeywords(c *fiber.Ctx) error {
	var req dto.KeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object with a text field")
	}

	resp, err := h.service.ExtractKeywords(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
