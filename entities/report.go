package entities

import (
	"github.com/google/uuid"
)

type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"index" json:"user_id"`
	Location    string     `json:"location"`
	WasteType   string     `json:"waste_type"`
	Amount      string     `json:"amount"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      string     `json:"status"` // pending, collected
	CollectorID *uuid.UUID `json:"collector_id,omitempty"`

	// Classification result attached at submission time.
	VerifiedWasteType  string  `json:"verified_waste_type,omitempty"`
	VerifiedQuantity   string  `json:"verified_quantity,omitempty"`
	VerifiedConfidence float64 `json:"verified_confidence,omitempty"`

	User      *User `gorm:"foreignKey:UserID"`
	Collector *User `gorm:"foreignKey:CollectorID"`
	Timestamp
}
