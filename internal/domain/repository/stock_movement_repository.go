package repository

import "github.com/modus-trade/modus-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de stock.
// El libro es append-only: la interfaz no expone Update ni Delete.
type StockMovementRepository interface {
	// Append persiste un movimiento nuevo. Rechaza con domain.ErrIntegrity
	// registros malformados (referencias vacías, cantidad no positiva,
	// tipo desconocido) antes de tocar el almacén.
	Append(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByProduct devuelve el historial de un producto en todas las
	// bodegas, ordenado por created_at descendente.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	ListByPair(productID, warehouseID string) ([]*entity.StockMovement, error)
	ListByWarehouse(warehouseID string) ([]*entity.StockMovement, error)
	ListAll() ([]*entity.StockMovement, error)
	// AcquirePairLock serializa las escrituras sobre un par
	// (producto, bodega). Solo tiene efecto dentro de una transacción;
	// el lock se libera al hacer Commit o Rollback.
	AcquirePairLock(productID, warehouseID string) error
}
