package report

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"Waste2Wealth-Backend/pkg/ledger"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Report{},
		&entities.Reward{},
		&entities.Transaction{},
		&entities.Notification{},
		&entities.CollectedWaste{},
	))
	return db
}

func newService(db *gorm.DB) ReportService {
	return NewReportService(NewReportRepository(db), nil)
}

func TestCreateReportCreditsReporter(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ledgerRepo := ledger.NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "123 Green St",
		WasteType: "plastic",
		Amount:    "2 kg",
		Verification: &domain.VerificationResult{
			WasteType:  "plastic",
			Quantity:   "2 kg",
			Confidence: 0.92,
		},
	}, userID.String())
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusPending, created.Status)
	require.NotNil(t, created.Verification)
	require.Equal(t, "plastic", created.Verification.WasteType)

	// Report submission is worth exactly 10 points.
	balance, err := ledgerRepo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, domain.PointsPerReport, balance)

	transactions, err := ledgerRepo.GetUserTransactions(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, domain.TransactionEarnedReport, transactions[0].Type)

	var notifCount int64
	require.NoError(t, db.Model(&entities.Notification{}).Where("user_id = ?", userID).Count(&notifCount).Error)
	require.EqualValues(t, 1, notifCount)
}

func TestCollectReportFullWorkflow(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ledgerRepo := ledger.NewLedgerRepository(db)
	ctx := context.Background()
	reporterID := uuid.New()
	collectorID := uuid.New()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "45 River Rd",
		WasteType: "glass",
		Amount:    "1 kg",
	}, reporterID.String())
	require.NoError(t, err)

	collected, err := svc.CollectReport(ctx, domain.CollectReportRequest{
		ReportID: created.ID,
		Verification: &domain.VerificationResult{
			WasteType:  "glass",
			Quantity:   "1 kg",
			Confidence: 0.88,
		},
	}, collectorID.String())
	require.NoError(t, err)
	require.Equal(t, "verified", collected.Status)
	require.Equal(t, collectorID.String(), collected.CollectorID)

	var report entities.Report
	require.NoError(t, db.Where("id = ?", created.ID).First(&report).Error)
	require.Equal(t, domain.ReportStatusCollected, report.Status)
	require.NotNil(t, report.CollectorID)
	require.Equal(t, collectorID, *report.CollectorID)

	balance, err := ledgerRepo.GetBalance(ctx, collectorID)
	require.NoError(t, err)
	require.Equal(t, pointsPerCollection, balance)

	transactions, err := ledgerRepo.GetUserTransactions(ctx, collectorID, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, domain.TransactionEarnedCollect, transactions[0].Type)
}

func TestCollectReportTwiceRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()
	reporterID := uuid.New()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "45 River Rd",
		WasteType: "glass",
		Amount:    "1 kg",
	}, reporterID.String())
	require.NoError(t, err)

	_, err = svc.CollectReport(ctx, domain.CollectReportRequest{ReportID: created.ID}, uuid.New().String())
	require.NoError(t, err)

	_, err = svc.CollectReport(ctx, domain.CollectReportRequest{ReportID: created.ID}, uuid.New().String())
	require.ErrorIs(t, err, domain.ErrReportAlreadyCollected)

	var collectedCount int64
	require.NoError(t, db.Model(&entities.CollectedWaste{}).Count(&collectedCount).Error)
	require.EqualValues(t, 1, collectedCount)
}

func TestCollectReportUnknownReport(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.CollectReport(context.Background(), domain.CollectReportRequest{ReportID: uuid.New().String()}, uuid.New().String())
	require.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestUpdateTaskStatusValidTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()
	collectorID := uuid.New()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "9 Hill Ave",
		WasteType: "metal",
		Amount:    "3 kg",
	}, uuid.New().String())
	require.NoError(t, err)

	err = svc.UpdateTaskStatus(ctx, domain.UpdateTaskStatusRequest{
		ReportID: created.ID,
		Status:   domain.ReportStatusCollected,
	}, collectorID.String())
	require.NoError(t, err)

	var report entities.Report
	require.NoError(t, db.Where("id = ?", created.ID).First(&report).Error)
	require.Equal(t, domain.ReportStatusCollected, report.Status)
}

func TestUpdateTaskStatusInvalidTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()
	collectorID := uuid.New().String()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "9 Hill Ave",
		WasteType: "metal",
		Amount:    "3 kg",
	}, uuid.New().String())
	require.NoError(t, err)

	// pending -> pending is not a legal transition.
	err = svc.UpdateTaskStatus(ctx, domain.UpdateTaskStatusRequest{
		ReportID: created.ID,
		Status:   domain.ReportStatusPending,
	}, collectorID)
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	// Neither is collected -> collected.
	require.NoError(t, svc.UpdateTaskStatus(ctx, domain.UpdateTaskStatusRequest{
		ReportID: created.ID,
		Status:   domain.ReportStatusCollected,
	}, collectorID))
	err = svc.UpdateTaskStatus(ctx, domain.UpdateTaskStatusRequest{
		ReportID: created.ID,
		Status:   domain.ReportStatusCollected,
	}, collectorID)
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestGetRecentReportsOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		report := &entities.Report{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			Location:  fmt.Sprintf("location-%d", i),
			WasteType: "plastic",
			Amount:    "1 kg",
			Status:    domain.ReportStatusPending,
		}
		report.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(report).Error)
	}

	reports, err := svc.GetRecentReports(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "location-2", reports[0].Location)
	require.Equal(t, "location-1", reports[1].Location)
}

func TestSaveCollectedWasteStandalone(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	created, err := svc.CreateReport(ctx, domain.CreateReportRequest{
		Location:  "2 Bay St",
		WasteType: "organic",
		Amount:    "5 kg",
	}, uuid.New().String())
	require.NoError(t, err)

	collected, err := svc.SaveCollectedWaste(ctx, domain.CollectReportRequest{ReportID: created.ID}, uuid.New().String())
	require.NoError(t, err)
	require.Equal(t, "verified", collected.Status)
	require.False(t, collected.CollectionDate.IsZero())
}
