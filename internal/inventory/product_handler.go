package inventory

import (
	"strings"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	CurrentStock  int     `json:"current_stock"`
	MinStock      int     `json:"min_stock"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Unit          *string  `json:"unit"`
	CurrentStock  *int     `json:"current_stock"` // manuel stok düzeltmesi (mutlak değer)
	MinStock      *int     `json:"min_stock"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"`
}

type ProductResponse struct {
	models.Product
	ProfitMargin float64 `json:"profit_margin"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, ProfitMargin: calc.ProductProfitMargin(p)}
}

// GET /api/products?q=arama
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		products = calc.FilterBySearch(c.Query("q"), products)

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/low-stock
// Stoğu kritik eşikte veya altında olan ürünler
func LowStockProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		return c.JSON(calc.LowStockProducts(products))
	}
}

// GET /api/products/metrics
func InventoryMetricsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		return c.JSON(calc.InventoryMetrics(products))
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		return c.JSON(toProductResponse(p))
	}
}

// POST /api/admin/products (sadece admin)
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Unit = strings.TrimSpace(body.Unit)
		body.Category = strings.TrimSpace(body.Category)

		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve unit zorunlu")
		}
		if body.CurrentStock < 0 || body.MinStock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok değerleri negatif olamaz")
		}
		if body.PurchasePrice < 0 || body.SellingPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyatlar negatif olamaz")
		}

		p := models.Product{
			Name:          body.Name,
			Category:      body.Category,
			Unit:          body.Unit,
			CurrentStock:  body.CurrentStock,
			MinStock:      body.MinStock,
			PurchasePrice: body.PurchasePrice,
			SellingPrice:  body.SellingPrice,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			p.Name = name
		}
		if body.Category != nil {
			p.Category = strings.TrimSpace(*body.Category)
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Unit boş olamaz")
			}
			p.Unit = unit
		}
		if body.CurrentStock != nil {
			if *body.CurrentStock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stok negatif olamaz")
			}
			p.CurrentStock = *body.CurrentStock
		}
		if body.MinStock != nil {
			if *body.MinStock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Kritik stok negatif olamaz")
			}
			p.MinStock = *body.MinStock
		}
		if body.PurchasePrice != nil {
			if *body.PurchasePrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Alış fiyatı negatif olamaz")
			}
			p.PurchasePrice = *body.PurchasePrice
		}
		if body.SellingPrice != nil {
			if *body.SellingPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Satış fiyatı negatif olamaz")
			}
			p.SellingPrice = *body.SellingPrice
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(toProductResponse(p))
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Product{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
