package calc

import "envanter-backend/internal/models"

// ProfitReport - kalem kalem maliyet dökümüyle kâr raporu.
// CostOfGoodsSold alım defterinden gelen maliyettir; satış kaynaklı
// maliyetler (ProductCostsFromSales, ManualItemCosts) ondan ayrı raporlanır
// ve brüt kârda üçü birden düşülür.
type ProfitReport struct {
	Revenue               float64 `json:"revenue"`
	CostOfGoodsSold       float64 `json:"cost_of_goods_sold"`
	ProductCostsFromSales float64 `json:"product_costs_from_sales"`
	ManualItemCosts       float64 `json:"manual_item_costs"`
	OperatingExpenses     float64 `json:"operating_expenses"`
	GrossProfit           float64 `json:"gross_profit"`
	NetProfit             float64 `json:"net_profit"`
	ProfitMargin          float64 `json:"profit_margin"` // yüzde; ciro 0 ise 0
}

// ProfitAnalysis - ciro, maliyet kalemleri ve kâr rakamlarını tek raporda
// toplar. Ciro 0 olduğunda marj 0 döner, asla NaN/Inf üretilmez.
func ProfitAnalysis(sales []models.Sale, purchases []models.Purchase, expenses []models.Expense, products []models.Product) ProfitReport {
	revenue := TotalRevenue(sales)
	purchaseCosts := TotalPurchaseCosts(purchases)
	productCosts := CostOfGoodsSoldFromSales(sales, products)
	manualCosts := ManualItemCosts(sales)
	operating := TotalExpenses(expenses)

	grossProfit := revenue - (purchaseCosts + productCosts + manualCosts)
	netProfit := grossProfit - operating

	margin := 0.0
	if revenue > 0 {
		margin = netProfit / revenue * 100
	}

	return ProfitReport{
		Revenue:               revenue,
		CostOfGoodsSold:       purchaseCosts,
		ProductCostsFromSales: productCosts,
		ManualItemCosts:       manualCosts,
		OperatingExpenses:     operating,
		GrossProfit:           grossProfit,
		NetProfit:             netProfit,
		ProfitMargin:          margin,
	}
}

// GrossProfitAfterInventory - ciro eksi TÜM maliyetler eksi eldeki stokun
// alış fiyatından değeri. "Satılmamış stok maliyetten silinse kasada ne
// kalır" sorusuna cevap verir; gerçekleşmiş işlemlerin kârını gösteren
// NetProfit'in yerine değil, yanında raporlanır.
func GrossProfitAfterInventory(sales []models.Sale, purchases []models.Purchase, expenses []models.Expense, products []models.Product) float64 {
	report := ProfitAnalysis(sales, purchases, expenses, products)
	return report.NetProfit - InventoryValue(products)
}
