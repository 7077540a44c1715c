package handlers

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/api/presenters"
	"Waste2Wealth-Backend/internal/utils"
	"Waste2Wealth-Backend/internal/utils/mailing"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrackingHandler interface {
		TrackVisit(c *fiber.Ctx) error
	}

	trackingHandler struct {
		validator *validator.Validate
	}
)

func NewTrackingHandler(validator *validator.Validate) TrackingHandler {
	return &trackingHandler{validator: validator}
}

// TrackVisit emails a visitor alert to the site owner. Delivery is
// fire-and-forget: a failed send is logged, never surfaced.
func (h *trackingHandler) TrackVisit(c *fiber.Ctx) error {
	req := new(domain.TrackVisitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTrackVisit, err)
	}

	go func(url, timestamp string) {
		body := fmt.Sprintf("A user just visited: %s at %s", url, timestamp)
		if err := mailing.SendMail(utils.GetConfig("SMTP_AUTH_EMAIL"), "New Website Visitor", body); err != nil {
			log.Printf("error sending visitor alert email: %v", err)
		}
	}(req.URL, req.Timestamp)

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessTrackVisit)
}
