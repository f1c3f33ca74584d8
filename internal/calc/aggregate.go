// Package calc - saf hesaplama çekirdeği. Tüm fonksiyonlar girdilerinin
// anlık kopyaları üzerinde çalışır, hiçbir şeyi mutate etmez, state tutmaz.
// Boş girdi her zaman sıfır/boş sonuç döndürür, hata durumu yoktur.
package calc

import "envanter-backend/internal/models"

// TotalRevenue - satışların toplam cirosu
func TotalRevenue(sales []models.Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.TotalAmount
	}
	return total
}

// TotalExpenses - giderlerin toplamı
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// TotalPurchaseCosts - alım defterindeki toplam maliyet
func TotalPurchaseCosts(purchases []models.Purchase) float64 {
	var total float64
	for _, p := range purchases {
		total += p.TotalAmount
	}
	return total
}

// InventoryValue - eldeki stokun alış fiyatından değeri (brüt değerleme)
func InventoryValue(products []models.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.CurrentStock) * p.PurchasePrice
	}
	return total
}

// RetailInventoryValue - eldeki stokun satış fiyatından değeri (net değerleme).
// InventoryValue ile aynı fold, farklı metrik: kâr modeli ikisini de raporlar.
func RetailInventoryValue(products []models.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.CurrentStock) * p.SellingPrice
	}
	return total
}

// LowStockProducts - stoğu kritik eşikte veya altında olan ürünler.
// Eşiğe tam eşit olan ürün de dahildir. Girdi sırası korunur.
func LowStockProducts(products []models.Product) []models.Product {
	low := make([]models.Product, 0)
	for _, p := range products {
		if p.CurrentStock <= p.MinStock {
			low = append(low, p)
		}
	}
	return low
}
