package domain

import (
	"errors"
	"time"
)

const (
	// Transaction types. Amounts are stored positive; earned_* adds to
	// the balance, redeemed subtracts.
	TransactionEarnedReport  = "earned_report"
	TransactionEarnedCollect = "earned_collect"
	TransactionRedeemed      = "redeemed"
)

var (
	MessageSuccessGetBalance      = "balance retrieved successfully"
	MessageSuccessGetTransactions = "transaction history retrieved successfully"
	MessageSuccessRedeemReward    = "reward redeemed successfully"
	MessageSuccessGetLeaderboard  = "leaderboard retrieved successfully"
	MessageSuccessGetRewards      = "available rewards retrieved successfully"

	MessageFailedGetBalance      = "failed to retrieve balance"
	MessageFailedGetTransactions = "failed to retrieve transaction history"
	MessageFailedRedeemReward    = "failed to redeem reward"
	MessageFailedGetLeaderboard  = "failed to retrieve leaderboard"
	MessageFailedGetRewards      = "failed to retrieve available rewards"
	MessageInsufficientPoints    = "insufficient points"

	ErrRewardNotFound     = errors.New("reward not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)

type (
	RedeemRequest struct {
		// Zero UUID redeems the user's whole balance instead of a
		// catalog reward.
		RewardID string `json:"reward_id" validate:"omitempty,uuid"`
	}

	Transaction struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		Amount      int       `json:"amount"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}

	Balance struct {
		Points int `json:"points"`
	}

	LeaderboardEntry struct {
		ID       string `json:"id"`
		UserID   string `json:"user_id"`
		UserName string `json:"user_name"`
		Points   int    `json:"points"`
		Level    int    `json:"level"`
	}

	AvailableReward struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Cost           int    `json:"cost"`
		Description    string `json:"description,omitempty"`
		CollectionInfo string `json:"collection_info,omitempty"`
	}
)
