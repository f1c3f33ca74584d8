package report

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/business/export?from=&to=
// İş raporunu xlsx olarak indirir.
func ExportBusinessReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRangeQuery(c)
		if err != nil {
			return err
		}

		snaps, err := loadSnapshots()
		if err != nil {
			return err
		}
		r := buildBusinessReport(snaps, from, to)

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("xlsx dosyası kapatılamadı: %v", err)
			}
		}()

		sheet := "Rapor"
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}

		rows := [][]interface{}{
			{"İş Raporu"},
			{"Dönem", r.From + " - " + r.To},
			{},
			{"FİNANSAL ÖZET"},
			{"Toplam ciro", r.Profit.Revenue},
			{"Alım maliyeti (defter)", r.Profit.CostOfGoodsSold},
			{"Satış kaynaklı ürün maliyeti", r.Profit.ProductCostsFromSales},
			{"Manuel kalem maliyeti", r.Profit.ManualItemCosts},
			{"İşletme giderleri", r.Profit.OperatingExpenses},
			{"Brüt kâr", r.Profit.GrossProfit},
			{"Net kâr", r.Profit.NetProfit},
			{"Kâr marjı (%)", r.Profit.ProfitMargin},
			{"Stok düşüldükten sonra kalan", r.Profit.GrossProfitAfterInventory},
			{},
			{"SATIŞ İSTATİSTİKLERİ"},
			{"Satış sayısı", r.Sales.TotalSales},
			{"Ortalama satış değeri", r.Sales.AverageSaleValue},
			{},
			{"EN ÇOK SATANLAR", "Miktar", "Ciro"},
		}
		for _, p := range r.Sales.TopSellingProducts {
			rows = append(rows, []interface{}{p.Name, p.Quantity, p.Revenue})
		}

		rows = append(rows,
			[]interface{}{},
			[]interface{}{"GİDER KATEGORİLERİ", "Tutar", "Adet", "Yüzde"},
		)
		for _, e := range r.ExpenseCategories {
			rows = append(rows, []interface{}{e.Category, e.Amount, e.Count, e.Percentage})
		}

		rows = append(rows,
			[]interface{}{},
			[]interface{}{"STOK"},
			[]interface{}{"Stok değeri (alış)", r.Inventory.TotalValue},
			[]interface{}{"Düşük stoklu ürün", r.Inventory.LowStockCount},
			[]interface{}{"Tükenen ürün", r.Inventory.OutOfStockCount},
		)

		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası yazılamadı")
		}

		filename := fmt.Sprintf("rapor_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}
