package stock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
	"github.com/modus-trade/modus-api/pkg/logger"
)

// UseCase escribe en el libro de stock: movimientos directos (IN/OUT) y
// traslados entre bodegas. Toda validación ocurre antes de cualquier
// escritura; la verificación de disponibilidad se repite dentro de la
// transacción, con el par (producto, bodega) bloqueado, para cerrar la
// ventana entre lectura de proyección y append.
type UseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	log           *logger.Logger
	tracer        trace.Tracer
}

// NewUseCase construye el caso de uso del libro de stock.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		log:           log,
		tracer:        otel.Tracer("modus-api/stock"),
	}
}

// MovementInput entrada para registrar un movimiento directo.
type MovementInput struct {
	ProductID   string
	WarehouseID string
	Type        string // IN | OUT
	Quantity    decimal.Decimal
	Note        string
}

// TransferInput entrada para un traslado entre bodegas.
type TransferInput struct {
	ProductID         string
	SourceWarehouseID string
	TargetWarehouseID string
	Quantity          decimal.Decimal
	Note              string
}

// RecordMovement valida cantidad y referencias, y agrega un movimiento al
// libro. Los OUT verifican disponibilidad dentro de la transacción; los IN
// nunca (solo suman). Los tipos TRANSFER_* no se aceptan por esta vía: una
// pata de traslado suelta rompería el invariante del transferGroupId.
func (uc *UseCase) RecordMovement(ctx context.Context, input MovementInput) error {
	ctx, span := uc.tracer.Start(ctx, "stock.record_movement")
	defer span.End()
	span.SetAttributes(
		attribute.String("stock.product_id", input.ProductID),
		attribute.String("stock.warehouse_id", input.WarehouseID),
		attribute.String("stock.movement_type", input.Type),
	)

	if err := validateQuantity(input.Quantity); err != nil {
		return err
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return domain.ErrInvalidInput
	}
	if err := uc.resolveRefs(input.ProductID, input.WarehouseID); err != nil {
		return err
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository) error {
		if err := movRepo.AcquirePairLock(input.ProductID, input.WarehouseID); err != nil {
			return err
		}
		if input.Type == entity.MovementTypeOUT {
			if err := validateAvailability(movRepo, input.ProductID, input.WarehouseID, input.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Append(&entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   input.ProductID,
			WarehouseID: input.WarehouseID,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Note:        input.Note,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("type", input.Type).
		Str("product_id", input.ProductID).
		Str("warehouse_id", input.WarehouseID).
		Str("quantity", input.Quantity.String()).
		Msg("movimiento de stock registrado")
	return nil
}

// Transfer ejecuta un traslado como dos movimientos pareados
// (TRANSFER_OUT en origen, TRANSFER_IN en destino) con un mismo
// transferGroupId, dentro de una sola transacción: o quedan las dos patas
// o ninguna. Se bloquean ambos pares en orden de clave para evitar
// interbloqueos entre traslados cruzados.
func (uc *UseCase) Transfer(ctx context.Context, input TransferInput) error {
	ctx, span := uc.tracer.Start(ctx, "stock.transfer")
	defer span.End()
	span.SetAttributes(
		attribute.String("stock.product_id", input.ProductID),
		attribute.String("stock.source_warehouse_id", input.SourceWarehouseID),
		attribute.String("stock.target_warehouse_id", input.TargetWarehouseID),
	)

	if err := validateQuantity(input.Quantity); err != nil {
		return err
	}
	if input.SourceWarehouseID == input.TargetWarehouseID {
		return domain.ErrInvalidInput
	}
	if err := uc.resolveRefs(input.ProductID, input.SourceWarehouseID); err != nil {
		return err
	}
	if _, err := uc.mustWarehouse(input.TargetWarehouseID); err != nil {
		return err
	}

	now := time.Now()
	groupID := uuid.New().String()
	span.SetAttributes(attribute.String("stock.transfer_group_id", groupID))

	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository) error {
		warehouses := []string{input.SourceWarehouseID, input.TargetWarehouseID}
		sort.Strings(warehouses)
		for _, w := range warehouses {
			if err := movRepo.AcquirePairLock(input.ProductID, w); err != nil {
				return err
			}
		}
		if err := validateAvailability(movRepo, input.ProductID, input.SourceWarehouseID, input.Quantity); err != nil {
			return err
		}
		out := &entity.StockMovement{
			ID:              uuid.New().String(),
			ProductID:       input.ProductID,
			WarehouseID:     input.SourceWarehouseID,
			Type:            entity.MovementTypeTRANSFEROUT,
			Quantity:        input.Quantity,
			TransferGroupID: &groupID,
			Note:            fmt.Sprintf("Traslado hacia %s: %s", input.TargetWarehouseID, input.Note),
			CreatedAt:       now,
		}
		if err := movRepo.Append(out); err != nil {
			return err
		}
		in := &entity.StockMovement{
			ID:              uuid.New().String(),
			ProductID:       input.ProductID,
			WarehouseID:     input.TargetWarehouseID,
			Type:            entity.MovementTypeTRANSFERIN,
			Quantity:        input.Quantity,
			TransferGroupID: &groupID,
			Note:            fmt.Sprintf("Traslado desde %s: %s", input.SourceWarehouseID, input.Note),
			CreatedAt:       now,
		}
		return movRepo.Append(in)
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("transfer_group_id", groupID).
		Str("product_id", input.ProductID).
		Str("source", input.SourceWarehouseID).
		Str("target", input.TargetWarehouseID).
		Str("quantity", input.Quantity.String()).
		Msg("traslado ejecutado")
	return nil
}

// resolveRefs verifica que producto y bodega existan (referencias prestadas,
// resueltas contra sus colaboradores; el libro nunca las muta).
func (uc *UseCase) resolveRefs(productID, warehouseID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	_, err = uc.mustWarehouse(warehouseID)
	return err
}

func (uc *UseCase) mustWarehouse(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

// validateQuantity falla con ErrInvalidQuantity si la cantidad es cero o
// negativa. Se aplica a toda petición mutadora antes de tocar el almacén.
func validateQuantity(q decimal.Decimal) error {
	if !q.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// validateAvailability recalcula el stock actual del par con el repositorio
// recibido (dentro de la tx, con el par ya bloqueado) y falla con
// ErrInsufficientStock si no alcanza para la salida pedida.
func validateAvailability(movRepo repository.StockMovementRepository, productID, warehouseID string, required decimal.Decimal) error {
	current, err := NewProjection(movRepo, nil).CurrentStock(productID, warehouseID)
	if err != nil {
		return err
	}
	if current.LessThan(required) {
		return domain.ErrInsufficientStock
	}
	return nil
}
