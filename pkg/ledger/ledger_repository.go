package ledger

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LedgerRepository interface {
		GetUserReward(ctx context.Context, userID uuid.UUID) (*entities.Reward, error)
		GetCatalogReward(ctx context.Context, rewardID uuid.UUID) (*entities.Reward, error)

		// CreditPoints appends an earned transaction, bumps the cached
		// reward balance and writes the notification in one database
		// transaction.
		CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description, notifMessage string) error

		// RedeemAll zeroes the balance. The update is guarded by the
		// balance read inside the same transaction, so a concurrent
		// redemption makes it affect zero rows instead of double
		// spending.
		RedeemAll(ctx context.Context, userID uuid.UUID) (int, error)

		// RedeemCatalog decrements the balance by the catalog reward's
		// cost, but only when the balance covers it.
		RedeemCatalog(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (int, string, error)

		GetBalance(ctx context.Context, userID uuid.UUID) (int, error)
		GetUserTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error)
	}

	ledgerRepository struct {
		db *gorm.DB
	}
)

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetUserReward(ctx context.Context, userID uuid.UUID) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *ledgerRepository) GetCatalogReward(ctx context.Context, rewardID uuid.UUID) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_available = ?", rewardID, true).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *ledgerRepository) CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description, notifMessage string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return CreditPointsTx(tx, userID, amount, txType, description, notifMessage)
	})
}

// CreditPointsTx runs the crediting steps inside an already open
// transaction so other workflows (report creation, collection) can fold
// them into their own atomic unit.
func CreditPointsTx(tx *gorm.DB, userID uuid.UUID, amount int, txType, description, notifMessage string) error {
	var reward entities.Reward
	if err := tx.
		Where(entities.Reward{UserID: userID}).
		Attrs(entities.Reward{
			ID:             uuid.New(),
			Name:           "Default Reward",
			CollectionInfo: "Default Collection Info",
			Points:         0,
			Level:          1,
			IsAvailable:    true,
		}).
		FirstOrCreate(&reward).Error; err != nil {
		return err
	}

	if err := tx.Model(&entities.Reward{}).
		Where("user_id = ?", userID).
		Update("points", gorm.Expr("points + ?", amount)).Error; err != nil {
		return err
	}

	transaction := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(transaction).Error; err != nil {
		return err
	}

	if notifMessage != "" {
		notification := &entities.Notification{
			ID:      uuid.New(),
			UserID:  userID,
			Message: notifMessage,
			Type:    "reward",
			IsRead:  false,
		}
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *ledgerRepository) RedeemAll(ctx context.Context, userID uuid.UUID) (int, error) {
	var redeemed int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reward entities.Reward
		if err := tx.Where("user_id = ?", userID).First(&reward).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRewardNotFound
			}
			return err
		}

		if reward.Points <= 0 {
			return domain.ErrInsufficientPoints
		}

		// The prior balance in the WHERE clause is the lost-update
		// guard: if another redemption landed first, no row matches.
		result := tx.Model(&entities.Reward{}).
			Where("user_id = ? AND points = ?", userID, reward.Points).
			Update("points", 0)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientPoints
		}

		transaction := &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        domain.TransactionRedeemed,
			Amount:      reward.Points,
			Description: "Redeemed all points",
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		redeemed = reward.Points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return redeemed, nil
}

func (r *ledgerRepository) RedeemCatalog(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (int, string, error) {
	var (
		cost int
		name string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var catalog entities.Reward
		if err := tx.Where("id = ? AND is_available = ?", rewardID, true).
			First(&catalog).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRewardNotFound
			}
			return err
		}

		// Conditional decrement, never read-then-write: the points >= cost
		// predicate makes concurrent redemptions serialize correctly.
		result := tx.Model(&entities.Reward{}).
			Where("user_id = ? AND points >= ?", userID, catalog.Points).
			Update("points", gorm.Expr("points - ?", catalog.Points))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientPoints
		}

		transaction := &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        domain.TransactionRedeemed,
			Amount:      catalog.Points,
			Description: "Redeemed: " + catalog.Name,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		cost = catalog.Points
		name = catalog.Name
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return cost, name, nil
}

func (r *ledgerRepository) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	var totalEarned int
	earnedQuery := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("user_id = ? AND type LIKE ?", userID, "earned%").
		Select("COALESCE(SUM(amount), 0) as total")
	if err := earnedQuery.Row().Scan(&totalEarned); err != nil {
		return 0, err
	}

	var totalRedeemed int
	redeemedQuery := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("user_id = ? AND type = ?", userID, domain.TransactionRedeemed).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := redeemedQuery.Row().Scan(&totalRedeemed); err != nil {
		return 0, err
	}

	balance := totalEarned - totalRedeemed
	if balance < 0 {
		balance = 0
	}
	return balance, nil
}

func (r *ledgerRepository) GetUserTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	var transactions []*entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
