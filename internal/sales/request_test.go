package sales

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuildItems(t *testing.T) {
	items, total, err := buildItems([]SaleItemRequest{
		{Type: "product", ProductID: strPtr("P1"), Quantity: 2, UnitPrice: 150},
		{Type: "manual", Name: "özel sipariş", Quantity: 3, UnitPrice: 1000, PurchasePrice: floatPtr(600)},
	})

	require.NoError(t, err)
	require.Len(t, items, 2)

	// Kalem toplamı miktar × birim fiyat, satış toplamı kalem toplamlarının toplamı
	assert.Equal(t, 300.0, items[0].TotalPrice)
	assert.Equal(t, 3000.0, items[1].TotalPrice)
	assert.Equal(t, 3300.0, total)
	assert.Equal(t, models.SaleItemProduct, items[0].Type)
	assert.Equal(t, models.SaleItemManual, items[1].Type)
}

func TestBuildItemsRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		items []SaleItemRequest
	}{
		{"kalem yok", nil},
		{"geçersiz tip", []SaleItemRequest{{Type: "bilinmeyen", Quantity: 1}}},
		{"product_id eksik", []SaleItemRequest{{Type: "product", Quantity: 1}}},
		{"product kaleminde service_id", []SaleItemRequest{{Type: "product", ProductID: strPtr("P1"), ServiceID: strPtr("S1"), Quantity: 1}}},
		{"service_id eksik", []SaleItemRequest{{Type: "service", Quantity: 1}}},
		{"service kaleminde product_id", []SaleItemRequest{{Type: "service", ServiceID: strPtr("S1"), ProductID: strPtr("P1"), Quantity: 1}}},
		{"manuel kalemde katalog referansı", []SaleItemRequest{{Type: "manual", Name: "x", ProductID: strPtr("P1"), Quantity: 1}}},
		{"manuel kalemde ad yok", []SaleItemRequest{{Type: "manual", Quantity: 1}}},
		{"miktar sıfır", []SaleItemRequest{{Type: "manual", Name: "x", Quantity: 0}}},
		{"negatif fiyat", []SaleItemRequest{{Type: "manual", Name: "x", Quantity: 1, UnitPrice: -5}}},
		{"product kaleminde alış fiyatı", []SaleItemRequest{{Type: "product", ProductID: strPtr("P1"), Quantity: 1, PurchasePrice: floatPtr(10)}}},
		{"negatif alış fiyatı", []SaleItemRequest{{Type: "manual", Name: "x", Quantity: 1, PurchasePrice: floatPtr(-1)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := buildItems(tc.items)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeLegacySale(t *testing.T) {
	// Eski tek kalemli format kanonik items dizisine çevrilir
	req := CreateSaleRequest{
		ItemType:    "product",
		ProductID:   strPtr("P1"),
		ProductName: "Elma",
		Quantity:    2,
		UnitPrice:   150,
	}
	req.normalizeLegacy()

	require.Len(t, req.Items, 1)
	assert.Equal(t, "product", req.Items[0].Type)
	assert.Equal(t, "Elma", req.Items[0].Name)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestNormalizeLegacyDefaults(t *testing.T) {
	// item_type yoksa service_id'den tip çıkarılır, miktar 1 varsayılır
	req := CreateSaleRequest{
		ServiceID:   strPtr("S1"),
		ServiceName: "Montaj",
		UnitPrice:   500,
	}
	req.normalizeLegacy()

	require.Len(t, req.Items, 1)
	assert.Equal(t, "service", req.Items[0].Type)
	assert.Equal(t, "Montaj", req.Items[0].Name)
	assert.Equal(t, 1, req.Items[0].Quantity)
}

func TestNormalizeLegacyNoop(t *testing.T) {
	// Kanonik format zaten varsa dokunulmaz
	req := CreateSaleRequest{
		Items:     []SaleItemRequest{{Type: "manual", Name: "x", Quantity: 1}},
		ProductID: strPtr("P1"),
	}
	req.normalizeLegacy()
	assert.Len(t, req.Items, 1)
	assert.Equal(t, "manual", req.Items[0].Type)
}
