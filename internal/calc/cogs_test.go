package calc

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCostOfGoodsSoldFromSales(t *testing.T) {
	products := []models.Product{
		{ID: "P1", PurchasePrice: 100, SellingPrice: 150, CurrentStock: 5, MinStock: 10},
	}
	sales := []models.Sale{
		{
			TotalAmount: 300,
			Items: []models.SaleItem{
				{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Quantity: 2, UnitPrice: 150, TotalPrice: 300},
			},
		},
	}

	assert.Equal(t, 300.0, TotalRevenue(sales))
	assert.Equal(t, 200.0, CostOfGoodsSoldFromSales(sales, products)) // 2 × 100

	low := LowStockProducts(products)
	assert.Len(t, low, 1) // 5 ≤ 10

	// Sadece satış kaynaklı maliyetle brüt kâr: 300 - 200 = 100
	report := ProfitAnalysis(sales, nil, nil, products)
	assert.Equal(t, 100.0, report.GrossProfit)
}

func TestCostOfGoodsSoldUsesCurrentPurchasePrice(t *testing.T) {
	// CurrentCostPolicy: alış fiyatı değişince geçmiş satışın maliyeti de değişir
	sales := []models.Sale{
		{Items: []models.SaleItem{
			{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Quantity: 2, UnitPrice: 150},
		}},
	}

	before := []models.Product{{ID: "P1", PurchasePrice: 100}}
	after := []models.Product{{ID: "P1", PurchasePrice: 120}}

	assert.Equal(t, 200.0, CostOfGoodsSoldFromSales(sales, before))
	assert.Equal(t, 240.0, CostOfGoodsSoldFromSales(sales, after))
}

func TestCostOfGoodsSoldSkipsUnknownProduct(t *testing.T) {
	sales := []models.Sale{
		{Items: []models.SaleItem{
			{Type: models.SaleItemProduct, ProductID: strPtr("silinmis"), Quantity: 3, UnitPrice: 50},
		}},
	}
	assert.Equal(t, 0.0, CostOfGoodsSoldFromSales(sales, nil))
}

func TestManualItemCosts(t *testing.T) {
	sales := []models.Sale{
		{
			TotalAmount: 3000,
			Items: []models.SaleItem{
				{Type: models.SaleItemManual, Name: "özel sipariş", Quantity: 3, UnitPrice: 1000, TotalPrice: 3000, PurchasePrice: floatPtr(600)},
				{Type: models.SaleItemManual, Name: "maliyetsiz", Quantity: 2, UnitPrice: 100, TotalPrice: 200}, // alış fiyatı yok → 0
			},
		},
	}

	assert.Equal(t, 1800.0, ManualItemCosts(sales)) // 3 × 600
	// Manuel kalem product maliyetine karışmaz
	assert.Equal(t, 0.0, CostOfGoodsSoldFromSales(sales, nil))
}

func TestServiceItemsContributeNoCost(t *testing.T) {
	// Hizmet kalemi diğer alanları dolu olsa bile iki maliyet toplamına da girmez
	sales := []models.Sale{
		{Items: []models.SaleItem{
			{
				Type:          models.SaleItemService,
				ServiceID:     strPtr("S1"),
				ProductID:     strPtr("P1"),
				Name:          "montaj",
				Quantity:      4,
				UnitPrice:     500,
				TotalPrice:    2000,
				PurchasePrice: floatPtr(999),
			},
		}},
	}
	products := []models.Product{{ID: "P1", PurchasePrice: 100}}

	assert.Equal(t, 0.0, CostOfGoodsSoldFromSales(sales, products))
	assert.Equal(t, 0.0, ManualItemCosts(sales))
}

func TestProductProfitMargin(t *testing.T) {
	assert.Equal(t, 50.0, ProductProfitMargin(models.Product{PurchasePrice: 100, SellingPrice: 150}))
	assert.Equal(t, 0.0, ProductProfitMargin(models.Product{PurchasePrice: 0, SellingPrice: 150}))
	assert.Equal(t, -25.0, ProductProfitMargin(models.Product{PurchasePrice: 100, SellingPrice: 75}))
}
