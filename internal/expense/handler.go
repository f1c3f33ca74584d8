package expense

import (
	"strings"
	"time"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // "2025-12-09", boşsa bugün
}

type UpdateExpenseRequest struct {
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// POST /api/expenses
func CreateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Category = strings.TrimSpace(body.Category)
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Category zorunlu")
		}
		if body.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tutar negatif olamaz")
		}

		expenseDate := time.Now()
		if body.Date != "" {
			parsed, err := parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date geçersiz (YYYY-MM-DD bekleniyor)")
			}
			expenseDate = parsed
		}

		e := models.Expense{
			Category:    body.Category,
			Amount:      body.Amount,
			Description: strings.TrimSpace(body.Description),
			Date:        expenseDate,
		}

		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GET /api/expenses?from=&to=&q=
func ListExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Expense{}).Order("date desc")

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := parseDate(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD bekleniyor)")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := parseDate(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD bekleniyor)")
			}
			dbq = dbq.Where("date < ?", to.AddDate(0, 0, 1))
		}

		var expenses []models.Expense
		if err := dbq.Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Giderler listelenemedi")
		}

		return c.JSON(calc.FilterBySearch(c.Query("q"), expenses))
	}
}

// GET /api/expenses/summary/by-category?from=&to=
// Kategori bazlı toplam, adet ve yüzde dökümü
func ExpenseSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var expenses []models.Expense
		if err := database.DB.Order("date asc").Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Giderler listelenemedi")
		}

		var from, to time.Time
		if fromStr := c.Query("from"); fromStr != "" {
			parsed, err := parseDate(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD bekleniyor)")
			}
			from = parsed
		}
		if toStr := c.Query("to"); toStr != "" {
			parsed, err := parseDate(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD bekleniyor)")
			}
			to = parsed.AddDate(0, 0, 1).Add(-time.Second)
		}

		filtered := calc.ExpensesInRange(expenses, from, to)
		return c.JSON(fiber.Map{
			"total": calc.TotalExpenses(filtered),
			"items": calc.ExpenseStats(filtered),
		})
	}
}

// PUT /api/expenses/:id
func UpdateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Expense
		if err := database.DB.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Gider bulunamadı")
		}

		var body UpdateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Category != nil {
			cat := strings.TrimSpace(*body.Category)
			if cat == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Category boş olamaz")
			}
			e.Category = cat
		}
		if body.Amount != nil {
			if *body.Amount < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Tutar negatif olamaz")
			}
			e.Amount = *body.Amount
		}
		if body.Description != nil {
			e.Description = strings.TrimSpace(*body.Description)
		}
		if body.Date != nil {
			parsed, err := parseDate(*body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date geçersiz (YYYY-MM-DD bekleniyor)")
			}
			e.Date = parsed
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider güncellenemedi")
		}

		return c.JSON(e)
	}
}

// DELETE /api/expenses/:id
func DeleteExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Expense{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
