package ledger

import (
	"Waste2Wealth-Backend/domain"
	"context"
	"fmt"

	"github.com/google/uuid"
)

const transactionHistoryLimit = 10

type (
	LedgerService interface {
		CreditPoints(ctx context.Context, userID string, amount int, txType, description string) error
		RedeemPoints(ctx context.Context, userID string, req domain.RedeemRequest) (*domain.Balance, error)
		GetBalance(ctx context.Context, userID string) (*domain.Balance, error)
		GetRecentTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error)
	}

	ledgerService struct {
		ledgerRepository LedgerRepository
	}
)

func NewLedgerService(ledgerRepository LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepository: ledgerRepository}
}

func (s *ledgerService) CreditPoints(ctx context.Context, userID string, amount int, txType, description string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	notifMessage := fmt.Sprintf("You've earned %d points!", amount)
	if txType == domain.TransactionEarnedReport {
		notifMessage = fmt.Sprintf("You've earned %d points for reporting waste!", amount)
	} else if txType == domain.TransactionEarnedCollect {
		notifMessage = fmt.Sprintf("You've earned %d points for collecting waste!", amount)
	}

	return s.ledgerRepository.CreditPoints(ctx, userUUID, amount, txType, description, notifMessage)
}

func (s *ledgerService) RedeemPoints(ctx context.Context, userID string, req domain.RedeemRequest) (*domain.Balance, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rewardUUID := uuid.Nil
	if req.RewardID != "" {
		rewardUUID, err = uuid.Parse(req.RewardID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
	}

	if rewardUUID == uuid.Nil {
		if _, err := s.ledgerRepository.RedeemAll(ctx, userUUID); err != nil {
			return nil, err
		}
	} else {
		if _, _, err := s.ledgerRepository.RedeemCatalog(ctx, userUUID, rewardUUID); err != nil {
			return nil, err
		}
	}

	reward, err := s.ledgerRepository.GetUserReward(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return &domain.Balance{Points: reward.Points}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	balance, err := s.ledgerRepository.GetBalance(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return &domain.Balance{Points: balance}, nil
}

func (s *ledgerService) GetRecentTransactions(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	transactions, err := s.ledgerRepository.GetUserTransactions(ctx, userUUID, transactionHistoryLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.Transaction{
			ID:          tx.ID.String(),
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.CreatedAt,
		})
	}
	return result, nil
}
