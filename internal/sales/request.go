package sales

import (
	"fmt"
	"strings"

	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaleItemRequest struct {
	Type          string   `json:"type"`
	ProductID     *string  `json:"product_id"`
	ServiceID     *string  `json:"service_id"`
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	Unit          string   `json:"unit"`
	PurchasePrice *float64 `json:"purchase_price"` // sadece manuel kalem
}

type CreateSaleRequest struct {
	Items        []SaleItemRequest `json:"items"`
	Date         string            `json:"date"` // "2025-12-09", boşsa bugün
	CustomerName string            `json:"customer_name"`
	Notes        string            `json:"notes"`

	// Eski tek kalemli satış formatı (geriye dönük uyumluluk):
	// items yerine üst seviyede tek ürün/hizmet alanları gelir.
	ItemType    string  `json:"item_type"`
	ProductID   *string `json:"product_id"`
	ServiceID   *string `json:"service_id"`
	ProductName string  `json:"product_name"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Unit        string  `json:"unit"`
}

// normalizeLegacy - eski formatı kanonik items dizisine çevirir.
// Çekirdek hesaplamalar her zaman kanonik form üzerinde çalışır.
func (r *CreateSaleRequest) normalizeLegacy() {
	if len(r.Items) > 0 {
		return
	}
	if r.ItemType == "" && r.ProductID == nil && r.ServiceID == nil {
		return
	}

	itemType := r.ItemType
	if itemType == "" {
		itemType = string(models.SaleItemProduct)
		if r.ServiceID != nil {
			itemType = string(models.SaleItemService)
		}
	}

	name := r.ProductName
	if name == "" {
		name = r.ServiceName
	}

	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}

	r.Items = []SaleItemRequest{{
		Type:      itemType,
		ProductID: r.ProductID,
		ServiceID: r.ServiceID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: r.UnitPrice,
		Unit:      r.Unit,
	}}
}

// buildItems - kalemleri doğrular ve model kayıtlarına çevirir. Tip ayrımı
// burada, kayıt oluşturma anında zorlanır: bir kalem aynı anda hem product
// hem manuel maliyet yoluna düşemez.
func buildItems(items []SaleItemRequest) ([]models.SaleItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Satışta en az bir kalem olmalı")
	}

	out := make([]models.SaleItem, 0, len(items))
	var total float64

	for i, item := range items {
		itemType := models.SaleItemType(strings.TrimSpace(item.Type))

		switch itemType {
		case models.SaleItemProduct:
			if item.ProductID == nil || *item.ProductID == "" {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: product tipinde product_id zorunlu", i+1))
			}
			if item.ServiceID != nil {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: product tipinde service_id olamaz", i+1))
			}
		case models.SaleItemService:
			if item.ServiceID == nil || *item.ServiceID == "" {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: service tipinde service_id zorunlu", i+1))
			}
			if item.ProductID != nil {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: service tipinde product_id olamaz", i+1))
			}
		case models.SaleItemManual:
			if item.ProductID != nil || item.ServiceID != nil {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: manuel kalemde katalog referansı olamaz", i+1))
			}
			if strings.TrimSpace(item.Name) == "" {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: manuel kalemde name zorunlu", i+1))
			}
		default:
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: geçersiz tip '%s'", i+1, item.Type))
		}

		if item.Quantity <= 0 {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: miktar pozitif olmalı", i+1))
		}
		if item.UnitPrice < 0 {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: birim fiyat negatif olamaz", i+1))
		}
		if item.PurchasePrice != nil {
			if itemType != models.SaleItemManual {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: alış fiyatı sadece manuel kalemde verilebilir", i+1))
			}
			if *item.PurchasePrice < 0 {
				return nil, 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kalem %d: alış fiyatı negatif olamaz", i+1))
			}
		}

		totalPrice := float64(item.Quantity) * item.UnitPrice
		total += totalPrice

		out = append(out, models.SaleItem{
			Type:          itemType,
			ProductID:     item.ProductID,
			ServiceID:     item.ServiceID,
			Name:          strings.TrimSpace(item.Name),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    totalPrice,
			Unit:          strings.TrimSpace(item.Unit),
			PurchasePrice: item.PurchasePrice,
		})
	}

	return out, total, nil
}
