package calc

import (
	"math"
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProfitAnalysis(t *testing.T) {
	products := []models.Product{
		{ID: "P1", PurchasePrice: 100, SellingPrice: 150, CurrentStock: 5},
	}
	sales := []models.Sale{
		{
			TotalAmount: 3300,
			Items: []models.SaleItem{
				{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Quantity: 2, UnitPrice: 150, TotalPrice: 300},
				{Type: models.SaleItemManual, Name: "özel", Quantity: 3, UnitPrice: 1000, TotalPrice: 3000, PurchasePrice: floatPtr(600)},
			},
		},
	}
	purchases := []models.Purchase{{TotalAmount: 500}}
	expenses := []models.Expense{{Amount: 200}}

	report := ProfitAnalysis(sales, purchases, expenses, products)

	assert.Equal(t, 3300.0, report.Revenue)
	assert.Equal(t, 500.0, report.CostOfGoodsSold)        // alım defteri
	assert.Equal(t, 200.0, report.ProductCostsFromSales)  // 2 × 100
	assert.Equal(t, 1800.0, report.ManualItemCosts)       // 3 × 600
	assert.Equal(t, 200.0, report.OperatingExpenses)
	assert.Equal(t, 3300.0-2500.0, report.GrossProfit)
	assert.Equal(t, 800.0-200.0, report.NetProfit)
	assert.InDelta(t, 600.0/3300.0*100, report.ProfitMargin, 1e-9)
}

func TestProfitMarginZeroRevenue(t *testing.T) {
	// Ciro 0 iken marj tam 0 olmalı, asla NaN/Inf olmamalı
	cases := []struct {
		name      string
		purchases []models.Purchase
		expenses  []models.Expense
	}{
		{"tamamen boş", nil, nil},
		{"sadece alım", []models.Purchase{{TotalAmount: 900}}, nil},
		{"alım ve gider", []models.Purchase{{TotalAmount: 900}}, []models.Expense{{Amount: 50}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := ProfitAnalysis(nil, tc.purchases, tc.expenses, nil)
			assert.Equal(t, 0.0, report.ProfitMargin)
			assert.False(t, math.IsNaN(report.ProfitMargin))
			assert.False(t, math.IsInf(report.ProfitMargin, 0))
		})
	}
}

func TestSaleTotalConsistency(t *testing.T) {
	// Kayıtlı toplam, kalemlerden yeniden hesaplanan toplamla aynı olmalı
	sale := models.Sale{
		TotalAmount: 3300,
		Items: []models.SaleItem{
			{Quantity: 2, UnitPrice: 150, TotalPrice: 300},
			{Quantity: 3, UnitPrice: 1000, TotalPrice: 3000},
		},
	}

	var recomputed float64
	for _, item := range sale.Items {
		assert.Equal(t, float64(item.Quantity)*item.UnitPrice, item.TotalPrice)
		recomputed += item.TotalPrice
	}
	assert.Equal(t, sale.TotalAmount, recomputed)
}

func TestGrossProfitAfterInventory(t *testing.T) {
	products := []models.Product{
		{ID: "P1", PurchasePrice: 100, SellingPrice: 150, CurrentStock: 5},
	}
	sales := []models.Sale{
		{
			TotalAmount: 300,
			Items: []models.SaleItem{
				{Type: models.SaleItemProduct, ProductID: strPtr("P1"), Quantity: 2, UnitPrice: 150, TotalPrice: 300},
			},
		},
	}
	expenses := []models.Expense{{Amount: 50}}

	report := ProfitAnalysis(sales, nil, expenses, products)
	got := GrossProfitAfterInventory(sales, nil, expenses, products)

	// NetProfit (300-200-50=50) eksi stok değeri (5×100=500)
	assert.Equal(t, 50.0, report.NetProfit)
	assert.Equal(t, -450.0, got)
	// İki metrik bağımsız: NetProfit değişmeden kalır
	assert.Equal(t, report.NetProfit, ProfitAnalysis(sales, nil, expenses, products).NetProfit)
}
