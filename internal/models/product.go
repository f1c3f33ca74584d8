package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Category      string    `gorm:"size:100;index" json:"category"`
	Unit          string    `gorm:"size:20;not null" json:"unit"` // kg, adet, litre vs.
	CurrentStock  int       `gorm:"not null;default:0" json:"current_stock"`
	MinStock      int       `gorm:"not null;default:0" json:"min_stock"` // kritik stok eşiği
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`      // birim alış fiyatı
	SellingPrice  float64   `gorm:"not null" json:"selling_price"`       // birim satış fiyatı
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
