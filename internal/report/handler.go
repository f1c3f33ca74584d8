package report

import (
	"time"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// snapshots - hesaplama çekirdeğine verilecek anlık koleksiyon kopyaları.
// Çekirdek saf fonksiyonlardan oluştuğu için tüm veri burada bir kerede
// yüklenir, filtreleme bellekte yapılır.
type snapshots struct {
	Sales     []models.Sale
	Purchases []models.Purchase
	Expenses  []models.Expense
	Products  []models.Product
}

func loadSnapshots() (*snapshots, error) {
	var s snapshots

	if err := database.DB.Preload("Items").Order("date asc").Find(&s.Sales).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
	}
	if err := database.DB.Order("date asc").Find(&s.Purchases).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Alımlar yüklenemedi")
	}
	if err := database.DB.Order("date asc").Find(&s.Expenses).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Giderler yüklenemedi")
	}
	if err := database.DB.Find(&s.Products).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Ürünler yüklenemedi")
	}

	return &s, nil
}

// window - satış/alım/gider koleksiyonlarını tarihe göre daraltır.
// Ürün kataloğu pencereden bağımsızdır: maliyet mutabakatı her zaman
// GÜNCEL stok ve alış fiyatıyla yapılır.
func (s *snapshots) window(from, to time.Time) *snapshots {
	return &snapshots{
		Sales:     calc.SalesInRange(s.Sales, from, to),
		Purchases: calc.PurchasesInRange(s.Purchases, from, to),
		Expenses:  calc.ExpensesInRange(s.Expenses, from, to),
		Products:  s.Products,
	}
}

func parseRangeQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	var from, to time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD bekleniyor)")
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD bekleniyor)")
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Second) // günün sonuna kadar dahil
	}

	return from, to, nil
}

type ProfitResponse struct {
	calc.ProfitReport
	GrossProfitAfterInventory float64 `json:"gross_profit_after_inventory"`
	InventoryValue            float64 `json:"inventory_value"`        // alış fiyatından
	RetailInventoryValue      float64 `json:"retail_inventory_value"` // satış fiyatından
}

func buildProfitResponse(s *snapshots) ProfitResponse {
	return ProfitResponse{
		ProfitReport:              calc.ProfitAnalysis(s.Sales, s.Purchases, s.Expenses, s.Products),
		GrossProfitAfterInventory: calc.GrossProfitAfterInventory(s.Sales, s.Purchases, s.Expenses, s.Products),
		InventoryValue:            calc.InventoryValue(s.Products),
		RetailInventoryValue:      calc.RetailInventoryValue(s.Products),
	}
}

// GET /api/reports/profit?from=&to=
func ProfitAnalysisHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRangeQuery(c)
		if err != nil {
			return err
		}

		snaps, err := loadSnapshots()
		if err != nil {
			return err
		}

		return c.JSON(buildProfitResponse(snaps.window(from, to)))
	}
}

// GET /api/dashboard/summary?period=today|week|month|year|all
func DashboardSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := periodRange(c.Query("period"), time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snaps, err := loadSnapshots()
		if err != nil {
			return err
		}
		windowed := snaps.window(from, to)

		profit := buildProfitResponse(windowed)
		lowStock := calc.LowStockProducts(snaps.Products)

		return c.JSON(fiber.Map{
			"period":             c.Query("period", "all"),
			"profit":             profit,
			"sales":              calc.SalesStats(windowed.Sales),
			"inventory":          calc.InventoryMetrics(snaps.Products),
			"low_stock_products": lowStock,
			"low_stock_count":    len(lowStock),
			"product_count":      len(snaps.Products),
		})
	}
}

type BusinessReport struct {
	From              string                `json:"from"`
	To                string                `json:"to"`
	Profit            ProfitResponse        `json:"profit"`
	Sales             calc.SalesSummary     `json:"sales"`
	ExpenseCategories []calc.CategoryStat   `json:"expense_categories"`
	Inventory         calc.InventorySummary `json:"inventory"`
}

func buildBusinessReport(s *snapshots, from, to time.Time) BusinessReport {
	windowed := s.window(from, to)

	fromLabel, toLabel := "başlangıç", "şimdi"
	if !from.IsZero() {
		fromLabel = from.Format("2006-01-02")
	}
	if !to.IsZero() {
		toLabel = to.Format("2006-01-02")
	}

	return BusinessReport{
		From:              fromLabel,
		To:                toLabel,
		Profit:            buildProfitResponse(windowed),
		Sales:             calc.SalesStats(windowed.Sales),
		ExpenseCategories: calc.ExpenseStats(windowed.Expenses),
		Inventory:         calc.InventoryMetrics(s.Products),
	}
}

// GET /api/reports/business?from=&to=
func BusinessReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRangeQuery(c)
		if err != nil {
			return err
		}

		snaps, err := loadSnapshots()
		if err != nil {
			return err
		}

		return c.JSON(buildBusinessReport(snaps, from, to))
	}
}
