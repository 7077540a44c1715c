package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Name     string    `json:"name"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // user, collector

	Reports       []*Report       `gorm:"foreignKey:UserID"`
	Transactions  []*Transaction  `gorm:"foreignKey:UserID"`
	Notifications []*Notification `gorm:"foreignKey:UserID"`
	Timestamp
}
