package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusCollected = "collected"

	// Fixed credit for submitting a verified waste report.
	PointsPerReport = 10
)

var (
	MessageSuccessCreateReport     = "waste report created successfully"
	MessageSuccessGetReports       = "reports retrieved successfully"
	MessageSuccessGetTasks         = "collection tasks retrieved successfully"
	MessageSuccessUpdateTaskStatus = "task status updated successfully"
	MessageSuccessCollectReport    = "waste collection recorded successfully"

	MessageFailedCreateReport     = "failed to create waste report"
	MessageFailedGetReports       = "failed to retrieve reports"
	MessageFailedGetTasks         = "failed to retrieve collection tasks"
	MessageFailedUpdateTaskStatus = "failed to update task status"
	MessageFailedCollectReport    = "failed to record waste collection"

	ErrReportNotFound          = errors.New("report not found")
	ErrInvalidReportStatus     = errors.New("invalid report status")
	ErrInvalidStatusTransition = errors.New("invalid report status transition")
	ErrReportAlreadyCollected  = errors.New("report already collected")
)

// ValidStatusTransition reports whether a report may move from one
// status to another. The only legal transition is pending -> collected.
func ValidStatusTransition(from, to string) bool {
	return from == ReportStatusPending && to == ReportStatusCollected
}

type (
	VerificationResult struct {
		WasteType  string  `json:"waste_type"`
		Quantity   string  `json:"quantity"`
		Confidence float64 `json:"confidence"`
	}

	CreateReportRequest struct {
		Location     string                `json:"location" form:"location" validate:"required"`
		WasteType    string                `json:"waste_type" form:"waste_type" validate:"required"`
		Amount       string                `json:"amount" form:"amount" validate:"required"`
		Image        *multipart.FileHeader `json:"-" form:"image"`
		Verification *VerificationResult   `json:"verification,omitempty" form:"-"`
	}

	UpdateTaskStatusRequest struct {
		ReportID string `json:"report_id" validate:"required,uuid"`
		Status   string `json:"status" validate:"required,oneof=pending collected"`
	}

	CollectReportRequest struct {
		ReportID     string              `json:"report_id" validate:"required,uuid"`
		Verification *VerificationResult `json:"verification,omitempty"`
	}

	Report struct {
		ID           string              `json:"id"`
		UserID       string              `json:"user_id"`
		Location     string              `json:"location"`
		WasteType    string              `json:"waste_type"`
		Amount       string              `json:"amount"`
		ImageURL     string              `json:"image_url,omitempty"`
		Status       string              `json:"status"`
		CollectorID  string              `json:"collector_id,omitempty"`
		Verification *VerificationResult `json:"verification,omitempty"`
		CreatedAt    time.Time           `json:"created_at"`
	}

	WasteCollectionTask struct {
		ID          string    `json:"id"`
		Location    string    `json:"location"`
		WasteType   string    `json:"waste_type"`
		Amount      string    `json:"amount"`
		Status      string    `json:"status"`
		Date        time.Time `json:"date"`
		CollectorID string    `json:"collector_id,omitempty"`
	}

	CollectedWaste struct {
		ID             string              `json:"id"`
		ReportID       string              `json:"report_id"`
		CollectorID    string              `json:"collector_id"`
		CollectionDate time.Time           `json:"collection_date"`
		Status         string              `json:"status"`
		Verification   *VerificationResult `json:"verification,omitempty"`
	}
)
