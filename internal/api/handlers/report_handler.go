package handlers

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/api/presenters"
	"Waste2Wealth-Backend/pkg/report"
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		CreateReport(c *fiber.Ctx) error
		GetRecentReports(c *fiber.Ctx) error
		GetWasteCollectionTasks(c *fiber.Ctx) error
		UpdateTaskStatus(c *fiber.Ctx) error
		SaveCollectedWaste(c *fiber.Ctx) error
		CollectReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) CreateReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Image and verification arrive as multipart parts alongside the form fields.
	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}
	if raw := c.FormValue("verification"); raw != "" {
		verification := new(domain.VerificationResult)
		if err := json.Unmarshal([]byte(raw), verification); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		req.Verification = verification
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	resp, err := h.reportService.CreateReport(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *reportHandler) GetRecentReports(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	reports, err := h.reportService.GetRecentReports(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, reports, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) GetWasteCollectionTasks(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	tasks, err := h.reportService.GetWasteCollectionTasks(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *reportHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	collectorID := c.Locals("user_id").(string)

	req := new(domain.UpdateTaskStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTaskStatus, err)
	}

	if err := h.reportService.UpdateTaskStatus(c.Context(), *req, collectorID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTaskStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTaskStatus)
}

func (h *reportHandler) SaveCollectedWaste(c *fiber.Ctx) error {
	collectorID := c.Locals("user_id").(string)

	req := new(domain.CollectReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCollectReport, err)
	}

	resp, err := h.reportService.SaveCollectedWaste(c.Context(), *req, collectorID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCollectReport, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCollectReport)
}

func (h *reportHandler) CollectReport(c *fiber.Ctx) error {
	collectorID := c.Locals("user_id").(string)

	req := new(domain.CollectReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCollectReport, err)
	}

	resp, err := h.reportService.CollectReport(c.Context(), *req, collectorID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCollectReport, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCollectReport)
}
