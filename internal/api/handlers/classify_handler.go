package handlers

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/api/presenters"
	"Waste2Wealth-Backend/pkg/classify"

	"github.com/gofiber/fiber/v2"
)

type (
	ClassifyHandler interface {
		ClassifyWaste(c *fiber.Ctx) error
	}

	classifyHandler struct {
		classifyService classify.ClassifyService
	}
)

func NewClassifyHandler(classifyService classify.ClassifyService) ClassifyHandler {
	return &classifyHandler{classifyService: classifyService}
}

func (h *classifyHandler) ClassifyWaste(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	result, err := h.classifyService.ClassifyWaste(c.Context(), image)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedClassifyWaste, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessClassifyWaste)
}
