package main

import (
	"log"
	"strings"

	"envanter-backend/internal/auth"
	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/expense"
	"envanter-backend/internal/inventory"
	"envanter-backend/internal/models"
	"envanter-backend/internal/purchase"
	"envanter-backend/internal/report"
	"envanter-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes (katalog yönetimi)
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Ürün yönetimi
	adminRoutes.Post("/products", inventory.CreateProductHandler())
	adminRoutes.Put("/products/:id", inventory.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", inventory.DeleteProductHandler())

	// Hizmet yönetimi
	adminRoutes.Post("/services", inventory.CreateServiceHandler())
	adminRoutes.Put("/services/:id", inventory.UpdateServiceHandler())
	adminRoutes.Delete("/services/:id", inventory.DeleteServiceHandler())

	// Ürün & stok
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Get("/products/low-stock", inventory.LowStockProductsHandler())
	protected.Get("/products/metrics", inventory.InventoryMetricsHandler())
	protected.Get("/products/:id", inventory.GetProductHandler())

	// Hizmetler
	protected.Get("/services", inventory.ListServicesHandler())

	// Satışlar
	protected.Post("/sales", sales.CreateSaleHandler())
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Get("/sales/stats", sales.SalesStatsHandler())
	protected.Get("/sales/:id", sales.GetSaleHandler())
	protected.Put("/sales/:id", sales.UpdateSaleHandler())
	protected.Delete("/sales/:id", sales.DeleteSaleHandler())

	// Alımlar
	protected.Post("/purchases", purchase.CreatePurchaseHandler())
	protected.Get("/purchases", purchase.ListPurchasesHandler())
	protected.Delete("/purchases/:id", purchase.DeletePurchaseHandler())

	// Giderler
	protected.Post("/expenses", expense.CreateExpenseHandler())
	protected.Get("/expenses", expense.ListExpensesHandler())
	protected.Get("/expenses/summary/by-category", expense.ExpenseSummaryHandler())
	protected.Put("/expenses/:id", expense.UpdateExpenseHandler())
	protected.Delete("/expenses/:id", expense.DeleteExpenseHandler())

	// Raporlar & dashboard
	protected.Get("/reports/profit", report.ProfitAnalysisHandler())
	protected.Get("/reports/business", report.BusinessReportHandler())
	protected.Get("/reports/business/export", report.ExportBusinessReportHandler())
	protected.Get("/dashboard/summary", report.DashboardSummaryHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
