package entities

import (
	"github.com/google/uuid"
)

type Reward struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	CollectionInfo string    `json:"collection_info,omitempty"`
	Points         int       `json:"points"`
	Level          int       `json:"level"`
	IsAvailable    bool      `json:"is_available"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
