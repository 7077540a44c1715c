package report

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"Waste2Wealth-Backend/pkg/ledger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		// CreateReport inserts the report and credits the reporter in
		// one database transaction, so a failed credit never leaves an
		// uncredited report behind.
		CreateReport(ctx context.Context, report *entities.Report, points int) error

		GetReportByID(ctx context.Context, id uuid.UUID) (*entities.Report, error)
		GetRecentReports(ctx context.Context, limit int) ([]*entities.Report, error)
		GetCollectionTasks(ctx context.Context, limit int) ([]*entities.Report, error)

		UpdateTaskStatus(ctx context.Context, reportID uuid.UUID, fromStatus, toStatus string, collectorID uuid.UUID) error
		SaveCollectedWaste(ctx context.Context, collected *entities.CollectedWaste) error

		// CollectReport transitions the report, inserts the collected
		// waste record and credits the collector atomically.
		CollectReport(ctx context.Context, reportID, collectorID uuid.UUID, collected *entities.CollectedWaste, points int) error
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report, points int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return ledger.CreditPointsTx(
			tx,
			report.UserID,
			points,
			domain.TransactionEarnedReport,
			"Points earned for reporting waste",
			fmt.Sprintf("You've earned %d points for reporting waste!", points),
		)
	})
}

func (r *reportRepository) GetReportByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetRecentReports(ctx context.Context, limit int) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetCollectionTasks(ctx context.Context, limit int) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) UpdateTaskStatus(ctx context.Context, reportID uuid.UUID, fromStatus, toStatus string, collectorID uuid.UUID) error {
	// The current status in the WHERE clause makes the transition
	// conditional: a report claimed by another collector in between
	// matches zero rows.
	result := r.db.WithContext(ctx).
		Model(&entities.Report{}).
		Where("id = ? AND status = ?", reportID, fromStatus).
		Updates(map[string]interface{}{
			"status":       toStatus,
			"collector_id": collectorID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidStatusTransition
	}
	return nil
}

func (r *reportRepository) SaveCollectedWaste(ctx context.Context, collected *entities.CollectedWaste) error {
	return r.db.WithContext(ctx).Create(collected).Error
}

func (r *reportRepository) CollectReport(ctx context.Context, reportID, collectorID uuid.UUID, collected *entities.CollectedWaste, points int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report entities.Report
		if err := tx.Where("id = ?", reportID).First(&report).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReportNotFound
			}
			return err
		}

		if !domain.ValidStatusTransition(report.Status, domain.ReportStatusCollected) {
			return domain.ErrReportAlreadyCollected
		}

		result := tx.Model(&entities.Report{}).
			Where("id = ? AND status = ?", reportID, domain.ReportStatusPending).
			Updates(map[string]interface{}{
				"status":       domain.ReportStatusCollected,
				"collector_id": collectorID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrReportAlreadyCollected
		}

		collected.ReportID = reportID
		collected.CollectorID = collectorID
		if collected.CollectionDate.IsZero() {
			collected.CollectionDate = time.Now()
		}
		if err := tx.Create(collected).Error; err != nil {
			return err
		}

		return ledger.CreditPointsTx(
			tx,
			collectorID,
			points,
			domain.TransactionEarnedCollect,
			"Points earned for collecting waste",
			fmt.Sprintf("You've earned %d points for collecting waste!", points),
		)
	})
}
