package report

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"Waste2Wealth-Backend/internal/utils/storage"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	recentReportsLimit   = 10
	collectionTasksLimit = 20

	// Collectors earn the same fixed credit as reporters.
	pointsPerCollection = 10
)

type (
	ReportService interface {
		CreateReport(ctx context.Context, req domain.CreateReportRequest, userID string) (*domain.Report, error)
		GetRecentReports(ctx context.Context, limit int) ([]*domain.Report, error)
		GetWasteCollectionTasks(ctx context.Context, limit int) ([]*domain.WasteCollectionTask, error)
		UpdateTaskStatus(ctx context.Context, req domain.UpdateTaskStatusRequest, collectorID string) error
		SaveCollectedWaste(ctx context.Context, req domain.CollectReportRequest, collectorID string) (*domain.CollectedWaste, error)
		CollectReport(ctx context.Context, req domain.CollectReportRequest, collectorID string) (*domain.CollectedWaste, error)
	}

	reportService struct {
		reportRepository ReportRepository
		s3               storage.AwsS3
	}
)

func NewReportService(reportRepository ReportRepository, s3 storage.AwsS3) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		s3:               s3,
	}
}

func (s *reportService) CreateReport(ctx context.Context, req domain.CreateReportRequest, userID string) (*domain.Report, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	reportID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("report-%s", reportID.String()),
			req.Image,
			"reports",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	report := &entities.Report{
		ID:        reportID,
		UserID:    userUUID,
		Location:  req.Location,
		WasteType: req.WasteType,
		Amount:    req.Amount,
		ImageURL:  imageURL,
		Status:    domain.ReportStatusPending,
	}
	if req.Verification != nil {
		report.VerifiedWasteType = req.Verification.WasteType
		report.VerifiedQuantity = req.Verification.Quantity
		report.VerifiedConfidence = req.Verification.Confidence
	}

	if err := s.reportRepository.CreateReport(ctx, report, domain.PointsPerReport); err != nil {
		return nil, err
	}

	return toReportDTO(report), nil
}

func (s *reportService) GetRecentReports(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit < 1 {
		limit = recentReportsLimit
	}

	reports, err := s.reportRepository.GetRecentReports(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Report, 0, len(reports))
	for _, report := range reports {
		result = append(result, toReportDTO(report))
	}
	return result, nil
}

func (s *reportService) GetWasteCollectionTasks(ctx context.Context, limit int) ([]*domain.WasteCollectionTask, error) {
	if limit < 1 {
		limit = collectionTasksLimit
	}

	reports, err := s.reportRepository.GetCollectionTasks(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.WasteCollectionTask, 0, len(reports))
	for _, report := range reports {
		task := &domain.WasteCollectionTask{
			ID:        report.ID.String(),
			Location:  report.Location,
			WasteType: report.WasteType,
			Amount:    report.Amount,
			Status:    report.Status,
			Date:      report.CreatedAt,
		}
		if report.CollectorID != nil {
			task.CollectorID = report.CollectorID.String()
		}
		result = append(result, task)
	}
	return result, nil
}

func (s *reportService) UpdateTaskStatus(ctx context.Context, req domain.UpdateTaskStatusRequest, collectorID string) error {
	reportUUID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return domain.ErrParseUUID
	}
	collectorUUID, err := uuid.Parse(collectorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	report, err := s.reportRepository.GetReportByID(ctx, reportUUID)
	if err != nil {
		return err
	}

	if !domain.ValidStatusTransition(report.Status, req.Status) {
		return domain.ErrInvalidStatusTransition
	}

	return s.reportRepository.UpdateTaskStatus(ctx, reportUUID, report.Status, req.Status, collectorUUID)
}

func (s *reportService) SaveCollectedWaste(ctx context.Context, req domain.CollectReportRequest, collectorID string) (*domain.CollectedWaste, error) {
	reportUUID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	collectorUUID, err := uuid.Parse(collectorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	collected := newCollectedWaste(reportUUID, collectorUUID, req.Verification)
	if err := s.reportRepository.SaveCollectedWaste(ctx, collected); err != nil {
		return nil, err
	}
	return toCollectedDTO(collected), nil
}

func (s *reportService) CollectReport(ctx context.Context, req domain.CollectReportRequest, collectorID string) (*domain.CollectedWaste, error) {
	reportUUID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	collectorUUID, err := uuid.Parse(collectorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	collected := newCollectedWaste(reportUUID, collectorUUID, req.Verification)
	if err := s.reportRepository.CollectReport(ctx, reportUUID, collectorUUID, collected, pointsPerCollection); err != nil {
		return nil, err
	}
	return toCollectedDTO(collected), nil
}

func newCollectedWaste(reportID, collectorID uuid.UUID, verification *domain.VerificationResult) *entities.CollectedWaste {
	collected := &entities.CollectedWaste{
		ID:             uuid.New(),
		ReportID:       reportID,
		CollectorID:    collectorID,
		CollectionDate: time.Now(),
		Status:         "verified",
	}
	if verification != nil {
		collected.VerifiedWasteType = verification.WasteType
		collected.VerifiedQuantity = verification.Quantity
		collected.VerifiedConfidence = verification.Confidence
	}
	return collected
}

func toReportDTO(report *entities.Report) *domain.Report {
	dto := &domain.Report{
		ID:        report.ID.String(),
		UserID:    report.UserID.String(),
		Location:  report.Location,
		WasteType: report.WasteType,
		Amount:    report.Amount,
		ImageURL:  report.ImageURL,
		Status:    report.Status,
		CreatedAt: report.CreatedAt,
	}
	if report.CollectorID != nil {
		dto.CollectorID = report.CollectorID.String()
	}
	if report.VerifiedWasteType != "" {
		dto.Verification = &domain.VerificationResult{
			WasteType:  report.VerifiedWasteType,
			Quantity:   report.VerifiedQuantity,
			Confidence: report.VerifiedConfidence,
		}
	}
	return dto
}

func toCollectedDTO(collected *entities.CollectedWaste) *domain.CollectedWaste {
	dto := &domain.CollectedWaste{
		ID:             collected.ID.String(),
		ReportID:       collected.ReportID.String(),
		CollectorID:    collected.CollectorID.String(),
		CollectionDate: collected.CollectionDate,
		Status:         collected.Status,
	}
	if collected.VerifiedWasteType != "" {
		dto.Verification = &domain.VerificationResult{
			WasteType:  collected.VerifiedWasteType,
			Quantity:   collected.VerifiedQuantity,
			Confidence: collected.VerifiedConfidence,
		}
	}
	return dto
}
