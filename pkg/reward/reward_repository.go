package reward

import (
	"Waste2Wealth-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LeaderboardRow struct {
		ID       string
		UserID   string
		UserName string
		Points   int
		Level    int
	}

	RewardRepository interface {
		GetAllRewards(ctx context.Context) ([]*LeaderboardRow, error)
		GetAvailableRewards(ctx context.Context) ([]*entities.Reward, error)
		CreateCatalogReward(ctx context.Context, reward *entities.Reward) error
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) GetAllRewards(ctx context.Context) ([]*LeaderboardRow, error) {
	var rows []*LeaderboardRow

	// user_id ASC breaks point ties deterministically.
	if err := r.db.WithContext(ctx).
		Model(&entities.Reward{}).
		Select("rewards.id as id, rewards.user_id as user_id, users.name as user_name, rewards.points as points, rewards.level as level").
		Joins("LEFT JOIN users ON users.id = rewards.user_id").
		Order("rewards.points DESC, rewards.user_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *rewardRepository) GetAvailableRewards(ctx context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("points ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) CreateCatalogReward(ctx context.Context, reward *entities.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}
