package calc

import "envanter-backend/internal/models"

// Satış kalemleri üç ayrık maliyet kaynağından beslenir ve bunlar asla
// birbirine karıştırılmaz:
//   - product: maliyet = miktar × ürünün GÜNCEL alış fiyatı
//   - manual:  maliyet = miktar × kalemin üzerindeki alış fiyatı (varsa)
//   - service: maliyet katkısı yok
//
// Product kalemlerinde satış anındaki değil güncel katalog fiyatının
// kullanılması bilinçli bir politikadır (CurrentCostPolicy): ürünün alış
// fiyatı sonradan değişirse geçmiş satışların kâr raporu da geriye dönük
// değişir. Fiyat-snapshot modeline geçmek tüm tarihî kâr rakamlarını
// değiştireceği için bu davranış korunur.

// CostOfGoodsSoldFromSales - satışlardaki product tipli kalemlerin, referans
// verdikleri ürünün güncel alış fiyatından hesaplanan toplam maliyeti.
// Katalogda bulunamayan ürün referansı 0 katkı yapar.
func CostOfGoodsSoldFromSales(sales []models.Sale, products []models.Product) float64 {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var total float64
	for _, s := range sales {
		for _, item := range s.Items {
			if item.Type != models.SaleItemProduct || item.ProductID == nil {
				continue
			}
			if p, ok := byID[*item.ProductID]; ok {
				total += float64(item.Quantity) * p.PurchasePrice
			}
		}
	}
	return total
}

// ManualItemCosts - manuel kalemlerin, kalem üzerinde taşınan alış
// fiyatından hesaplanan toplam maliyeti. Alış fiyatı girilmemiş manuel
// kalem 0 katkı yapar.
func ManualItemCosts(sales []models.Sale) float64 {
	var total float64
	for _, s := range sales {
		for _, item := range s.Items {
			if item.Type != models.SaleItemManual || item.PurchasePrice == nil {
				continue
			}
			total += float64(item.Quantity) * *item.PurchasePrice
		}
	}
	return total
}

// ProductProfitMargin - tek ürünün alış fiyatına göre kâr marjı yüzdesi.
// Alış fiyatı 0 ise 0 döner.
func ProductProfitMargin(p models.Product) float64 {
	if p.PurchasePrice == 0 {
		return 0
	}
	return (p.SellingPrice - p.PurchasePrice) / p.PurchasePrice * 100
}
