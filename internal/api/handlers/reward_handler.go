package handlers

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/api/presenters"
	"Waste2Wealth-Backend/pkg/ledger"
	"Waste2Wealth-Backend/pkg/reward"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		GetBalance(c *fiber.Ctx) error
		GetTransactionHistory(c *fiber.Ctx) error
		RedeemReward(c *fiber.Ctx) error
		GetLeaderboard(c *fiber.Ctx) error
		GetAvailableRewards(c *fiber.Ctx) error
	}

	rewardHandler struct {
		ledgerService ledger.LedgerService
		rewardService reward.RewardService
		validator     *validator.Validate
	}
)

func NewRewardHandler(ledgerService ledger.LedgerService, rewardService reward.RewardService, validator *validator.Validate) RewardHandler {
	return &rewardHandler{
		ledgerService: ledgerService,
		rewardService: rewardService,
		validator:     validator,
	}
}

func (h *rewardHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balance, err := h.ledgerService.GetBalance(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBalance, err)
	}

	return presenters.SuccessResponse(c, balance, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *rewardHandler) GetTransactionHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	transactions, err := h.ledgerService.GetRecentTransactions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, transactions, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}

func (h *rewardHandler) RedeemReward(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RedeemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, err)
	}

	balance, err := h.ledgerService.RedeemPoints(c.Context(), userID, *req)
	if err != nil {
		// Insufficient points is a distinct, user-facing condition.
		if err == domain.ErrInsufficientPoints {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageInsufficientPoints, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, err)
	}

	return presenters.SuccessResponse(c, balance, fiber.StatusOK, domain.MessageSuccessRedeemReward)
}

func (h *rewardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.rewardService.GetLeaderboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}

func (h *rewardHandler) GetAvailableRewards(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	rewards, err := h.rewardService.GetAvailableRewards(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, rewards, fiber.StatusOK, domain.MessageSuccessGetRewards)
}
