package ledger

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Per-test in-memory database to avoid cross-test interference
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

func TestCreditPointsAccumulates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 10, domain.TransactionEarnedReport, "Points earned for reporting waste", "notif"))
	require.NoError(t, repo.CreditPoints(ctx, userID, 15, domain.TransactionEarnedCollect, "Points earned for collecting waste", "notif"))

	reward, err := repo.GetUserReward(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 25, reward.Points)
	require.Equal(t, 1, reward.Level)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 25, balance)

	transactions, err := repo.GetUserTransactions(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	for _, tx := range transactions {
		require.Positive(t, tx.Amount)
	}

	var notifCount int64
	require.NoError(t, db.Model(&entities.Notification{}).Where("user_id = ?", userID).Count(&notifCount).Error)
	require.EqualValues(t, 2, notifCount)
}

func TestCreditPointsSkipsEmptyNotification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 10, domain.TransactionEarnedReport, "desc", ""))

	var notifCount int64
	require.NoError(t, db.Model(&entities.Notification{}).Where("user_id = ?", userID).Count(&notifCount).Error)
	require.EqualValues(t, 0, notifCount)
}

func TestRedeemAllZeroesBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 100, domain.TransactionEarnedReport, "desc", "notif"))

	redeemed, err := repo.RedeemAll(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 100, redeemed)

	reward, err := repo.GetUserReward(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, reward.Points)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, balance)

	// A second redemption must fail instead of driving the balance negative.
	_, err = repo.RedeemAll(ctx, userID)
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	reward, err = repo.GetUserReward(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, reward.Points)
}

func TestRedeemAllWithoutRewardRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)

	_, err := repo.RedeemAll(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestRedeemCatalogDecrementsCost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 100, domain.TransactionEarnedReport, "desc", "notif"))

	catalog := &entities.Reward{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Tote Bag",
		Points:      40,
		Level:       1,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(catalog).Error)

	cost, name, err := repo.RedeemCatalog(ctx, userID, catalog.ID)
	require.NoError(t, err)
	require.Equal(t, 40, cost)
	require.Equal(t, "Tote Bag", name)

	reward, err := repo.GetUserReward(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 60, reward.Points)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 60, balance)
}

func TestRedeemCatalogInsufficientPoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 50, domain.TransactionEarnedReport, "desc", "notif"))

	catalog := &entities.Reward{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Compost Bin",
		Points:      100,
		Level:       1,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(catalog).Error)

	_, _, err := repo.RedeemCatalog(ctx, userID, catalog.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	// Balance and ledger history are untouched by the failed redemption.
	reward, err := repo.GetUserReward(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 50, reward.Points)

	var txCount int64
	require.NoError(t, db.Model(&entities.Transaction{}).Where("user_id = ?", userID).Count(&txCount).Error)
	require.EqualValues(t, 1, txCount)
}

func TestRedeemCatalogUnknownReward(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreditPoints(ctx, userID, 50, domain.TransactionEarnedReport, "desc", "notif"))

	_, _, err := repo.RedeemCatalog(ctx, userID, uuid.New())
	require.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestBalanceMatchesCachedPoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	amounts := []int{10, 10, 25, 5}
	for _, amount := range amounts {
		require.NoError(t, repo.CreditPoints(ctx, userID, amount, domain.TransactionEarnedReport, "desc", "notif"))
	}
	_, err := repo.RedeemAll(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, repo.CreditPoints(ctx, userID, 30, domain.TransactionEarnedCollect, "desc", "notif"))

	reward, err := repo.GetUserReward(ctx, userID)
	require.NoError(t, err)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, reward.Points, balance)
	require.GreaterOrEqual(t, balance, 0)
}

func TestBalanceClampedAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// An orphan redemption row must not produce a negative balance.
	orphan := &entities.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Type:   domain.TransactionRedeemed,
		Amount: 5,
	}
	require.NoError(t, db.Create(orphan).Error)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, balance)
}

func TestLedgerServiceRedeemAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	svc := NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.New().String()

	require.NoError(t, svc.CreditPoints(ctx, userID, 80, domain.TransactionEarnedReport, "Points earned for reporting waste"))

	balance, err := svc.RedeemPoints(ctx, userID, domain.RedeemRequest{})
	require.NoError(t, err)
	require.Equal(t, 0, balance.Points)

	_, err = svc.RedeemPoints(ctx, userID, domain.RedeemRequest{})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestLedgerServiceRecentTransactionsWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	svc := NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.New().String()

	for i := 0; i < 12; i++ {
		require.NoError(t, svc.CreditPoints(ctx, userID, 10, domain.TransactionEarnedReport, "desc"))
	}

	// The history endpoint windows to the 10 most recent entries; the
	// balance still folds everything.
	transactions, err := svc.GetRecentTransactions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, transactions, 10)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 120, balance.Points)
}

func TestLedgerServiceRejectsBadUUID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLedgerService(NewLedgerRepository(db))

	_, err := svc.GetBalance(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}
