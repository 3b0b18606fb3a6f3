// seed puebla la base con datos de demostración: usuario admin, bodegas,
// productos, un cliente y movimientos iniciales de stock (incluido un
// traslado). Idempotencia best-effort: si el admin ya existe, no reintenta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/application/auth"
	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/infrastructure/postgres"
	"github.com/modus-trade/modus-api/pkg/config"
	"github.com/modus-trade/modus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	stockUC := stock.NewUseCase(txRunner, productRepo, warehouseRepo, log)

	// Usuario admin
	_, err = authUC.RegisterUser(dto.RegisterRequest{
		Name:     "Administrador",
		Email:    "admin@modus.local",
		Password: "admin123",
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Info().Msg("datos de demostración ya cargados, nada que hacer")
			return
		}
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	now := time.Now()

	// Bodegas
	central := &entity.Warehouse{
		ID: uuid.New().String(), Name: "Bodega Central",
		Location: "Bogotá", Active: true, CreatedAt: now,
	}
	norte := &entity.Warehouse{
		ID: uuid.New().String(), Name: "Bodega Norte",
		Location: "Medellín", Active: true, CreatedAt: now,
	}
	for _, w := range []*entity.Warehouse{central, norte} {
		if err := warehouseRepo.Create(w); err != nil {
			log.Fatal().Err(err).Str("warehouse", w.Name).Msg("crear bodega")
		}
	}

	// Productos
	products := []*entity.Product{
		{ID: uuid.New().String(), SKU: "CAF-001", Name: "Café tostado 500g",
			Unit: "un", UnitPrice: decimal.NewFromFloat(12.50), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), SKU: "AZU-001", Name: "Azúcar refinada 1kg",
			Unit: "un", UnitPrice: decimal.NewFromFloat(3.20), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), SKU: "ARR-001", Name: "Arroz blanco 5kg",
			Unit: "un", UnitPrice: decimal.NewFromFloat(8.90), CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("crear producto")
		}
	}

	// Cliente
	customer := &entity.Customer{
		ID: uuid.New().String(), Name: "Distribuciones Andinas S.A.S.",
		Email: "compras@andinas.local", Type: entity.CustomerTypeCompany,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		log.Fatal().Err(err).Msg("crear cliente")
	}

	// Stock inicial: entradas en la bodega central
	for _, p := range products {
		err := stockUC.RecordMovement(ctx, stock.MovementInput{
			ProductID:   p.ID,
			WarehouseID: central.ID,
			Type:        entity.MovementTypeIN,
			Quantity:    decimal.NewFromInt(100),
			Note:        "Carga inicial",
		})
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("movimiento inicial")
		}
	}

	// Un traslado de muestra hacia la bodega norte
	err = stockUC.Transfer(ctx, stock.TransferInput{
		ProductID:         products[0].ID,
		SourceWarehouseID: central.ID,
		TargetWarehouseID: norte.ID,
		Quantity:          decimal.NewFromInt(20),
		Note:              "Reparto inicial",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("traslado inicial")
	}

	log.Info().Msg("datos de demostración cargados")
}
