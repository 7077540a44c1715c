package reward

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/pkg/ledger"
	"context"

	"github.com/google/uuid"
)

type (
	RewardService interface {
		GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error)
		GetAvailableRewards(ctx context.Context, userID string) ([]*domain.AvailableReward, error)
	}

	rewardService struct {
		rewardRepository RewardRepository
		ledgerRepository ledger.LedgerRepository
	}
)

func NewRewardService(rewardRepository RewardRepository, ledgerRepository ledger.LedgerRepository) RewardService {
	return &rewardService{
		rewardRepository: rewardRepository,
		ledgerRepository: ledgerRepository,
	}
}

func (s *rewardService) GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	rows, err := s.rewardRepository.GetAllRewards(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, &domain.LeaderboardEntry{
			ID:       row.ID,
			UserID:   row.UserID,
			UserName: row.UserName,
			Points:   row.Points,
			Level:    row.Level,
		})
	}
	return result, nil
}

func (s *rewardService) GetAvailableRewards(ctx context.Context, userID string) ([]*domain.AvailableReward, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	balance, err := s.ledgerRepository.GetBalance(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	rewards, err := s.rewardRepository.GetAvailableRewards(ctx)
	if err != nil {
		return nil, err
	}

	// The zero-UUID entry represents the user's own balance, redeemable
	// in full.
	result := make([]*domain.AvailableReward, 0, len(rewards)+1)
	result = append(result, &domain.AvailableReward{
		ID:             uuid.Nil.String(),
		Name:           "Your Points",
		Cost:           balance,
		Description:    "Redeem your earned points",
		CollectionInfo: "Points earned from reporting and collecting waste",
	})

	for _, reward := range rewards {
		result = append(result, &domain.AvailableReward{
			ID:             reward.ID.String(),
			Name:           reward.Name,
			Cost:           reward.Points,
			Description:    reward.Description,
			CollectionInfo: reward.CollectionInfo,
		})
	}
	return result, nil
}
