package handlers

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/api/presenters"
	"Waste2Wealth-Backend/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetUnreadNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetUnreadNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetUnreadNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	notificationID := c.Params("id")

	if err := h.notificationService.MarkAsRead(c.Context(), notificationID); err != nil {
		if err == domain.ErrNotificationNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}
