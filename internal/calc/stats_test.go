package calc

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSalesStats(t *testing.T) {
	sales := []models.Sale{
		{
			TotalAmount: 600, Date: date(1),
			Items: []models.SaleItem{
				{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Name: "Elma", Quantity: 2, UnitPrice: 150, TotalPrice: 300},
				{Type: models.SaleItemManual, Name: "Taşıma", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
			},
		},
		{
			TotalAmount: 450, Date: date(2),
			Items: []models.SaleItem{
				{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Name: "Elma", Quantity: 3, UnitPrice: 150, TotalPrice: 450},
			},
		},
	}

	stats := SalesStats(sales)

	assert.Equal(t, 2, stats.TotalSales)
	assert.Equal(t, 1050.0, stats.TotalRevenue)
	assert.Equal(t, 525.0, stats.AverageSaleValue)

	// P1 iki satışta toplam 5 adet, manuel kalem adıyla gruplanır
	assert.Len(t, stats.TopSellingProducts, 2)
	assert.Equal(t, "P1", stats.TopSellingProducts[0].ProductID)
	assert.Equal(t, 5, stats.TopSellingProducts[0].Quantity)
	assert.Equal(t, 750.0, stats.TopSellingProducts[0].Revenue)
	assert.Equal(t, "Taşıma", stats.TopSellingProducts[1].Name)
	assert.Empty(t, stats.TopSellingProducts[1].ProductID)
}

func TestSalesStatsEmpty(t *testing.T) {
	stats := SalesStats(nil)
	assert.Equal(t, 0, stats.TotalSales)
	assert.Equal(t, 0.0, stats.AverageSaleValue)
	assert.Empty(t, stats.TopSellingProducts)
}

func TestTopSellingProductsStableOnTies(t *testing.T) {
	// Eşit miktarda satılan iki ürün ilk görülme sırasını korumalı
	sales := []models.Sale{
		{Items: []models.SaleItem{
			{Type: models.SaleItemProduct, ProductID: strPtr("once"), Name: "Önce", Quantity: 4, TotalPrice: 100},
			{Type: models.SaleItemProduct, ProductID: strPtr("sonra"), Name: "Sonra", Quantity: 4, TotalPrice: 200},
		}},
	}

	for i := 0; i < 5; i++ {
		stats := SalesStats(sales)
		assert.Equal(t, "once", stats.TopSellingProducts[0].ProductID)
		assert.Equal(t, "sonra", stats.TopSellingProducts[1].ProductID)
	}
}

func TestSalesStatsTopTen(t *testing.T) {
	items := make([]models.SaleItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, models.SaleItem{
			Type:     models.SaleItemManual,
			Name:     string(rune('A' + i)),
			Quantity: 12 - i,
		})
	}
	stats := SalesStats([]models.Sale{{Items: items}})

	assert.Len(t, stats.TopSellingProducts, 10)
	assert.Equal(t, "A", stats.TopSellingProducts[0].Name)
}

func TestExpenseStats(t *testing.T) {
	expenses := []models.Expense{
		{Category: "kira", Amount: 600},
		{Category: "elektrik", Amount: 100},
		{Category: "kira", Amount: 200},
		{Category: "su", Amount: 100},
	}

	stats := ExpenseStats(expenses)

	assert.Len(t, stats, 3)
	assert.Equal(t, "kira", stats[0].Category)
	assert.Equal(t, 800.0, stats[0].Amount)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 80.0, stats[0].Percentage)

	// Eşit tutarlı kategoriler girdideki sırayı korur
	assert.Equal(t, "elektrik", stats[1].Category)
	assert.Equal(t, "su", stats[2].Category)
}

func TestExpenseStatsZeroTotal(t *testing.T) {
	stats := ExpenseStats([]models.Expense{{Category: "kira", Amount: 0}})
	assert.Equal(t, 0.0, stats[0].Percentage) // toplam 0 iken bölme yapılmaz
	assert.Empty(t, ExpenseStats(nil))
}

func TestInventoryMetrics(t *testing.T) {
	products := []models.Product{
		{ID: "p1", CurrentStock: 5, MinStock: 10, PurchasePrice: 100}, // düşük stok, değer 500
		{ID: "p2", CurrentStock: 0, MinStock: 2, PurchasePrice: 50},   // tükendi + düşük stok
		{ID: "p3", CurrentStock: 20, MinStock: 5, PurchasePrice: 40},  // değer 800
	}

	m := InventoryMetrics(products)

	assert.Equal(t, 1300.0, m.TotalValue)
	assert.Equal(t, 2, m.LowStockCount)
	assert.Equal(t, 1, m.OutOfStockCount)
	assert.InDelta(t, 1300.0/3, m.AverageStockValue, 1e-9)

	assert.Equal(t, "p3", m.MostValuableProducts[0].ID)
	assert.Equal(t, 800.0, m.MostValuableProducts[0].StockValue)
	assert.Equal(t, "p1", m.MostValuableProducts[1].ID)
}

func TestInventoryMetricsEmpty(t *testing.T) {
	m := InventoryMetrics(nil)
	assert.Equal(t, 0.0, m.TotalValue)
	assert.Equal(t, 0.0, m.AverageStockValue)
	assert.Empty(t, m.MostValuableProducts)
}

func TestInventoryMetricsTopFive(t *testing.T) {
	products := make([]models.Product, 0, 7)
	for i := 0; i < 7; i++ {
		products = append(products, models.Product{
			ID:            string(rune('a' + i)),
			CurrentStock:  7 - i,
			PurchasePrice: 10,
		})
	}
	m := InventoryMetrics(products)
	assert.Len(t, m.MostValuableProducts, 5)
	assert.Equal(t, "a", m.MostValuableProducts[0].ID)
}
