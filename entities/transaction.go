package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transaction rows are append-only. Amount is always stored positive;
// the sign is implied by Type.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Type        string    `gorm:"not null" json:"type"` // earned_report, earned_collect, redeemed
	Amount      int       `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
