package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/auth"
	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/application/usecase"
	"github.com/modus-trade/modus-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *stock.UseCase
	StockQueries *stock.Queries
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	CustomerUC   *usecase.CustomerUseCase
	DemandUC     *usecase.DemandUseCase
	OfferUC      *usecase.OfferUseCase
	ReportUC     *usecase.ReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock: libro de movimientos y proyección (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.StockQueries)
	stockGroup.Post("/movements", stockHandler.RecordMovement)
	stockGroup.Get("/movements", stockHandler.History)
	stockGroup.Post("/transfers", stockHandler.Transfer)
	stockGroup.Get("/", stockHandler.Overview)
	stockGroup.Get("/:productId", stockHandler.CurrentStock)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Demands (protegido)
	demands := protected.Group("/demands")
	demandHandler := NewDemandHandler(deps.DemandUC)
	demands.Post("/", demandHandler.Create)
	demands.Get("/", demandHandler.List)
	demands.Get("/:id", demandHandler.GetByID)
	demands.Patch("/:id/status", demandHandler.UpdateStatus)

	// Offers (protegido)
	offers := protected.Group("/offers")
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers.Post("/", offerHandler.Create)
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
	offers.Patch("/:id/status", offerHandler.UpdateStatus)

	// Reports (protegido, solo admin)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/stock/pdf", reportHandler.StockPDF)
}
