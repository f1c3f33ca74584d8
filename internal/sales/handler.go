package sales

import (
	"fmt"
	"time"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateSaleRequest struct {
	Items        []SaleItemRequest `json:"items"`
	Date         *string           `json:"date"`
	CustomerName *string           `json:"customer_name"`
	Notes        *string           `json:"notes"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// applyItems - kalemleri stok kontrolüyle işler: product kalemlerinde stok
// düşer, katalogdan ad/birim tamamlanır. Satış kaydetme akışının stok
// mutasyonu sadece burada (ve geri almada) yapılır.
func applyItems(tx *gorm.DB, items []models.SaleItem) error {
	for i := range items {
		item := &items[i]

		switch item.Type {
		case models.SaleItemProduct:
			var p models.Product
			if err := tx.First(&p, "id = ?", *item.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı: "+*item.ProductID)
			}
			if p.CurrentStock < item.Quantity {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Yetersiz stok: %s (mevcut: %d %s)", p.Name, p.CurrentStock, p.Unit))
			}
			if item.Name == "" {
				item.Name = p.Name
			}
			if item.Unit == "" {
				item.Unit = p.Unit
			}
			if err := tx.Model(&p).Update("current_stock", p.CurrentStock-item.Quantity).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Stok güncellenemedi")
			}

		case models.SaleItemService:
			var s models.Service
			if err := tx.First(&s, "id = ?", *item.ServiceID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Hizmet bulunamadı: "+*item.ServiceID)
			}
			if item.Name == "" {
				item.Name = s.Name
			}
			if item.Unit == "" {
				item.Unit = s.Unit
			}
		}
	}
	return nil
}

// restoreItems - product kalemlerinin düşürdüğü stoğu geri ekler.
// Düzenlemede önce geri al sonra uygula sırası izlenir ki stok geçici
// olarak eksiye düşmesin veya çift düşülmesin.
func restoreItems(tx *gorm.DB, items []models.SaleItem) error {
	for _, item := range items {
		if item.Type != models.SaleItemProduct || item.ProductID == nil {
			continue
		}
		var p models.Product
		if err := tx.First(&p, "id = ?", *item.ProductID).Error; err != nil {
			// Ürün katalogdan silinmişse geri eklenecek stok yok
			continue
		}
		if err := tx.Model(&p).Update("current_stock", p.CurrentStock+item.Quantity).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok geri alınamadı")
		}
	}
	return nil
}

// POST /api/sales
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		body.normalizeLegacy()

		items, total, err := buildItems(body.Items)
		if err != nil {
			return err
		}

		saleDate := time.Now()
		if body.Date != "" {
			saleDate, err = parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date geçersiz (YYYY-MM-DD bekleniyor)")
			}
		}

		sale := models.Sale{
			TotalAmount:  total,
			Date:         saleDate,
			CustomerName: body.CustomerName,
			Notes:        body.Notes,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := applyItems(tx, items); err != nil {
				return err
			}
			sale.Items = items
			if err := tx.Create(&sale).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales?from=2025-12-01&to=2025-12-31&q=arama
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Items").Order("date desc")

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := parseDate(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD bekleniyor)")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := parseDate(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD bekleniyor)")
			}
			dbq = dbq.Where("date < ?", to.AddDate(0, 0, 1))
		}

		var sales []models.Sale
		if err := dbq.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}

		return c.JSON(calc.FilterBySearch(c.Query("q"), sales))
	}
}

// GET /api/sales/stats?from=&to=
func SalesStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sales []models.Sale
		if err := database.DB.Preload("Items").Order("date asc").Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}

		var from, to time.Time
		if fromStr := c.Query("from"); fromStr != "" {
			parsed, err := parseDate(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD bekleniyor)")
			}
			from = parsed
		}
		if toStr := c.Query("to"); toStr != "" {
			parsed, err := parseDate(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD bekleniyor)")
			}
			to = parsed.AddDate(0, 0, 1).Add(-time.Second)
		}

		return c.JSON(calc.SalesStats(calc.SalesInRange(sales, from, to)))
	}
}

// GET /api/sales/:id
func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.Preload("Items").First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		}
		return c.JSON(sale)
	}
}

// PUT /api/sales/:id
// Eski kalemlerin stoğu geri alınır, yeni kalemler stok kontrolüyle
// uygulanır; hepsi tek transaction içinde.
func UpdateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.Preload("Items").First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		}

		var body UpdateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Date != nil {
			parsed, err := parseDate(*body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date geçersiz (YYYY-MM-DD bekleniyor)")
			}
			sale.Date = parsed
		}
		if body.CustomerName != nil {
			sale.CustomerName = *body.CustomerName
		}
		if body.Notes != nil {
			sale.Notes = *body.Notes
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if body.Items != nil {
				newItems, total, err := buildItems(body.Items)
				if err != nil {
					return err
				}

				if err := restoreItems(tx, sale.Items); err != nil {
					return err
				}
				if err := tx.Delete(&models.SaleItem{}, "sale_id = ?", sale.ID).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Eski kalemler silinemedi")
				}

				if err := applyItems(tx, newItems); err != nil {
					return err
				}
				for i := range newItems {
					newItems[i].SaleID = sale.ID
				}
				if err := tx.Create(&newItems).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Kalemler kaydedilemedi")
				}

				sale.Items = newItems
				sale.TotalAmount = total
			}

			if err := tx.Omit("Items").Save(&sale).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satış güncellenemedi")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.JSON(sale)
	}
}

// DELETE /api/sales/:id
// Satışın düşürdüğü stok geri eklenir.
func DeleteSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.Preload("Items").First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := restoreItems(tx, sale.Items); err != nil {
				return err
			}
			if err := tx.Delete(&models.SaleItem{}, "sale_id = ?", sale.ID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kalemler silinemedi")
			}
			if err := tx.Delete(&sale).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satış silinemedi")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
