package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleItemType - satış kalemi tipi. Üç tip birbirini dışlar:
// product katalogdan stoklu ürün, service katalogdan hizmet,
// manual ise katalogda karşılığı olmayan serbest kalem.
type SaleItemType string

const (
	SaleItemProduct SaleItemType = "product"
	SaleItemService SaleItemType = "service"
	SaleItemManual  SaleItemType = "manual"
)

type Sale struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Items        []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount  float64    `gorm:"not null" json:"total_amount"` // kalem toplamlarının toplamı
	Date         time.Time  `gorm:"index;not null" json:"date"`
	CustomerName string     `gorm:"size:100" json:"customer_name"`
	Notes        string     `gorm:"size:500" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SaleItem struct {
	ID         string       `gorm:"primaryKey;size:36" json:"id"`
	SaleID     string       `gorm:"size:36;index;not null" json:"sale_id"`
	Type       SaleItemType `gorm:"type:varchar(20);not null" json:"type"`
	ProductID  *string      `gorm:"size:36;index" json:"product_id,omitempty"` // sadece type=product
	ServiceID  *string      `gorm:"size:36;index" json:"service_id,omitempty"` // sadece type=service
	Name       string       `gorm:"size:100;not null" json:"name"`             // satış anındaki ad, katalogdan bağımsız
	Quantity   int          `gorm:"not null" json:"quantity"`
	UnitPrice  float64      `gorm:"not null" json:"unit_price"` // satış anındaki fiyat
	TotalPrice float64      `gorm:"not null" json:"total_price"`
	Unit       string       `gorm:"size:20" json:"unit"`
	// Sadece manuel kalemlerde anlamlı: katalogda maliyet kaydı olmadığı
	// için alış fiyatı kalemin üzerinde taşınır.
	PurchasePrice *float64  `json:"purchase_price,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
