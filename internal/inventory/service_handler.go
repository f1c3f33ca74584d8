package inventory

import (
	"strings"

	"envanter-backend/internal/calc"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Unit        *string  `json:"unit"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// GET /api/services?q=arama
func ListServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var services []models.Service
		if err := database.DB.Order("name asc").Find(&services).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hizmetler listelenemedi")
		}

		return c.JSON(calc.FilterBySearch(c.Query("q"), services))
	}
}

// POST /api/admin/services (sadece admin)
func CreateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Unit = strings.TrimSpace(body.Unit)

		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve unit zorunlu")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
		}

		s := models.Service{
			Name:        body.Name,
			Category:    strings.TrimSpace(body.Category),
			Unit:        body.Unit,
			Price:       body.Price,
			Description: body.Description,
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hizmet oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// PUT /api/admin/services/:id
func UpdateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.Service
		if err := database.DB.First(&s, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hizmet bulunamadı")
		}

		var body UpdateServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			s.Name = name
		}
		if body.Category != nil {
			s.Category = strings.TrimSpace(*body.Category)
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Unit boş olamaz")
			}
			s.Unit = unit
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			s.Price = *body.Price
		}
		if body.Description != nil {
			s.Description = *body.Description
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hizmet güncellenemedi")
		}

		return c.JSON(s)
	}
}

// DELETE /api/admin/services/:id
func DeleteServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Service{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hizmet silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
