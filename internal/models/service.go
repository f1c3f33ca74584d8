package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service - stok takibi olmayan hizmet kalemi (montaj, tamir vs.)
type Service struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Unit        string    `gorm:"size:20;not null" json:"unit"` // saat, adet vs.
	Price       float64   `gorm:"not null" json:"price"`        // birim fiyat
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
