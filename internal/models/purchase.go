package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase - tedarikçiden yapılan mal alımı. Stok miktarını otomatik
// değiştirmez; stok sadece satış akışında veya manuel düzenlemeyle değişir.
type Purchase struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID    *string   `gorm:"size:36;index" json:"product_id,omitempty"` // katalog eşleşmesi opsiyonel
	Description  string    `gorm:"size:255" json:"description"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitCost     float64   `gorm:"not null" json:"unit_cost"`
	TotalAmount  float64   `gorm:"not null" json:"total_amount"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	SupplierName string    `gorm:"size:100" json:"supplier_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
