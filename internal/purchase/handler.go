package purchase

import (
	"strings"
	"time"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePurchaseRequest struct {
	ProductID    *string `json:"product_id"` // katalog eşleşmesi opsiyonel
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitCost     float64 `json:"unit_cost"`
	Date         string  `json:"date"` // "2025-12-09", boşsa bugün
	SupplierName string  `json:"supplier_name"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// POST /api/purchases
// Alım kaydı stok miktarını DEĞİŞTİRMEZ: stok, satış akışı veya manuel
// ürün düzenlemesi dışında hiçbir yerden türetilmez.
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Miktar pozitif olmalı")
		}
		if body.UnitCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Birim maliyet negatif olamaz")
		}

		description := strings.TrimSpace(body.Description)
		if body.ProductID != nil && *body.ProductID != "" {
			var p models.Product
			if err := database.DB.First(&p, "id = ?", *body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı")
			}
			if description == "" {
				description = p.Name
			}
		} else {
			body.ProductID = nil
			if description == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün referansı yoksa description zorunlu")
			}
		}

		purchaseDate := time.Now()
		if body.Date != "" {
			parsed, err := parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date geçersiz (YYYY-MM-DD bekleniyor)")
			}
			purchaseDate = parsed
		}

		p := models.Purchase{
			ProductID:    body.ProductID,
			Description:  description,
			Quantity:     body.Quantity,
			UnitCost:     body.UnitCost,
			TotalAmount:  float64(body.Quantity) * body.UnitCost,
			Date:         purchaseDate,
			SupplierName: strings.TrimSpace(body.SupplierName),
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/purchases?from=&to=&q=
func ListPurchasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Purchase{}).Order("date desc")

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

		var purchases []models.Purchase
		if err := dbq.Find(&purchases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alımlar listelenemedi")
		}

		return c.JSON(calc.FilterBySearch(c.Query("q"), purchases))
	}
}

// DELETE /api/purchases/:id
func DeletePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Purchase{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
