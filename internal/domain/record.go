package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCurrency is applied to every priced listing created without one.
const DefaultCurrency = "SAR"

// Record is embedded by every persisted entity.
type Record struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the record identifier.
func (r Record) Key() string { return r.ID }

// BeforeCreate assigns a UUID when the caller did not.
func (r *Record) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
