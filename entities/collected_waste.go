package entities

import (
	"time"

	"github.com/google/uuid"
)

type CollectedWaste struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReportID       uuid.UUID `gorm:"index" json:"report_id"`
	CollectorID    uuid.UUID `gorm:"index" json:"collector_id"`
	CollectionDate time.Time `gorm:"type:timestamp" json:"collection_date"`
	Status         string    `json:"status"` // verified

	VerifiedWasteType  string  `json:"verified_waste_type,omitempty"`
	VerifiedQuantity   string  `json:"verified_quantity,omitempty"`
	VerifiedConfidence float64 `json:"verified_confidence,omitempty"`

	Report    *Report `gorm:"foreignKey:ReportID"`
	Collector *User   `gorm:"foreignKey:CollectorID"`
	Timestamp
}
