package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/modus-trade/modus-api/internal/application/auth"
	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/application/usecase"
	"github.com/modus-trade/modus-api/internal/infrastructure/observability"
	infrapdf "github.com/modus-trade/modus-api/internal/infrastructure/pdf"
	"github.com/modus-trade/modus-api/internal/infrastructure/postgres"
	httpRouter "github.com/modus-trade/modus-api/internal/interfaces/http"
	"github.com/modus-trade/modus-api/pkg/config"
	"github.com/modus-trade/modus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización de trazas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewStockMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	demandRepo := postgres.NewDemandRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(txRunner, productRepo, warehouseRepo, log)
	stockQueries := stock.NewQueries(movementRepo, productRepo, warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	demandUC := usecase.NewDemandUseCase(demandRepo, productRepo, txRunner)
	offerUC := usecase.NewOfferUseCase(offerRepo, demandRepo, customerRepo, productRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := usecase.NewReportUseCase(
		productRepo, customerRepo, demandRepo, offerRepo, stockQueries, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Modus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      stockUC,
		StockQueries: stockQueries,
		ProductUC:    productUC,
		WarehouseUC:  warehouseUC,
		CustomerUC:   customerUC,
		DemandUC:     demandUC,
		OfferUC:      offerUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del exportador de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
