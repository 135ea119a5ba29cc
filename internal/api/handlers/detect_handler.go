package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/dto"
	"github.com/aminafi/smartfinance/internal/service"
)

type DetectHandler struct {
	detectService *service.DetectService
	logger        *zap.Logger
}

func NewDetectHandler(detectService *service.DetectService, logger *zap.Logger) *DetectHandler {
	return &DetectHandler{
		detectService: detectService,
		logger:        logger,
	}
}

// Detect handles POST /api/v1/detect. It classifies a free-text money
// sentence into a transaction suggestion without persisting anything.
func (h *DetectHandler) Detect(c *fiber.Ctx) error {
	var req dto.DetectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	detected, err := h.detectService.Detect(c.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingAmount):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.DetectErrorResponse{
				Error: err.Error(),
				Hint:  service.HintMissingAmount,
			})
		case errors.Is(err, service.ErrLowConfidence), errors.Is(err, service.ErrUnclassified):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.DetectErrorResponse{
				Error: err.Error(),
				Hint:  service.HintLowConfidence,
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
				"error": "Request cancelled",
			})
		}
		h.logger.Error("Detection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Detection failed",
		})
	}

	return c.JSON(dto.DetectResponse{
		Amount:      detected.Amount.InexactFloat64(),
		Type:        string(detected.Type),
		Title:       detected.Title,
		Description: detected.Description,
		Confidence:  detected.Confidence,
	})
}
