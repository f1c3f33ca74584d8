package calc

import (
	"sort"

	"envanter-backend/internal/models"
)

// Tüm sıralamalar stable sort kullanır: aynı anahtara sahip kayıtların
// girdideki göreli sırası korunur, aynı girdi her çağrıda aynı çıktıyı verir.

type TopProduct struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type SalesSummary struct {
	TotalSales         int          `json:"total_sales"`
	TotalRevenue       float64      `json:"total_revenue"`
	AverageSaleValue   float64      `json:"average_sale_value"` // satış yoksa 0
	TopSellingProducts []TopProduct `json:"top_selling_products"`
}

// SalesStats - satış sayısı, ciro, ortalama satış değeri ve miktara göre en
// çok satan ilk 10 kalem. Gruplama anahtarı product_id, yoksa kalem adı;
// böylece manuel ve hizmet kalemleri de adlarıyla sıralamaya girer.
func SalesStats(sales []models.Sale) SalesSummary {
	totalSales := len(sales)
	totalRevenue := TotalRevenue(sales)

	average := 0.0
	if totalSales > 0 {
		average = totalRevenue / float64(totalSales)
	}

	// İlk görülme sırası korunur ki eşit miktarlar deterministik sıralansın
	index := make(map[string]int)
	top := make([]TopProduct, 0)

	for _, s := range sales {
		for _, item := range s.Items {
			key := item.Name
			productID := ""
			if item.ProductID != nil {
				key = *item.ProductID
				productID = *item.ProductID
			}

			i, ok := index[key]
			if !ok {
				i = len(top)
				index[key] = i
				top = append(top, TopProduct{ProductID: productID, Name: item.Name})
			}
			top[i].Quantity += item.Quantity
			top[i].Revenue += item.TotalPrice
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return SalesSummary{
		TotalSales:         totalSales,
		TotalRevenue:       totalRevenue,
		AverageSaleValue:   average,
		TopSellingProducts: top,
	}
}

type CategoryStat struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // toplam 0 ise 0
}

// ExpenseStats - kategori bazlı gider toplamları, adetleri ve toplam
// içindeki yüzdeleri. Tutara göre azalan sıralanır.
func ExpenseStats(expenses []models.Expense) []CategoryStat {
	total := TotalExpenses(expenses)

	index := make(map[string]int)
	stats := make([]CategoryStat, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(stats)
			index[e.Category] = i
			stats = append(stats, CategoryStat{Category: e.Category})
		}
		stats[i].Amount += e.Amount
		stats[i].Count++
	}

	for i := range stats {
		if total > 0 {
			stats[i].Percentage = stats[i].Amount / total * 100
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount > stats[j].Amount
	})
	return stats
}

type ValuedProduct struct {
	models.Product
	StockValue float64 `json:"stock_value"` // stok × alış fiyatı
}

type InventorySummary struct {
	TotalValue           float64         `json:"total_value"`
	LowStockCount        int             `json:"low_stock_count"`
	OutOfStockCount      int             `json:"out_of_stock_count"` // stok tam 0
	AverageStockValue    float64         `json:"average_stock_value"`
	MostValuableProducts []ValuedProduct `json:"most_valuable_products"`
}

// InventoryMetrics - stok değerlemesi, kritik/tükenen stok sayıları ve
// eldeki değere göre ilk 5 ürün.
func InventoryMetrics(products []models.Product) InventorySummary {
	totalValue := InventoryValue(products)

	outOfStock := 0
	for _, p := range products {
		if p.CurrentStock == 0 {
			outOfStock++
		}
	}

	average := 0.0
	if len(products) > 0 {
		average = totalValue / float64(len(products))
	}

	valued := make([]ValuedProduct, 0, len(products))
	for _, p := range products {
		valued = append(valued, ValuedProduct{
			Product:    p,
			StockValue: float64(p.CurrentStock) * p.PurchasePrice,
		})
	}
	sort.SliceStable(valued, func(i, j int) bool {
		return valued[i].StockValue > valued[j].StockValue
	})
	if len(valued) > 5 {
		valued = valued[:5]
	}

	return InventorySummary{
		TotalValue:           totalValue,
		LowStockCount:        len(LowStockProducts(products)),
		OutOfStockCount:      outOfStock,
		AverageStockValue:    average,
		MostValuableProducts: valued,
	}
}
