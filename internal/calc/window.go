package calc

import (
	"time"

	"envanter-backend/internal/models"
)

// Tarih penceresi filtreleri: [from, to] aralığı iki uçta da dahildir.
// Sıfır değerli from/to o yönde sınırsız demektir. Girdi sırası korunur.

func inRange(d, from, to time.Time) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

func SalesInRange(sales []models.Sale, from, to time.Time) []models.Sale {
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if inRange(s.Date, from, to) {
			out = append(out, s)
		}
	}
	return out
}

func PurchasesInRange(purchases []models.Purchase, from, to time.Time) []models.Purchase {
	out := make([]models.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if inRange(p.Date, from, to) {
			out = append(out, p)
		}
	}
	return out
}

func ExpensesInRange(expenses []models.Expense, from, to time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	return out
}
