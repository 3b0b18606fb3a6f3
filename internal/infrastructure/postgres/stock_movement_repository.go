package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo adaptador PostgreSQL del libro de stock (usable con
// pool o tx). La tabla no recibe UPDATE ni DELETE desde la aplicación.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, warehouse_id, type, quantity, transfer_group_id, note, created_at`

// Append persiste un movimiento nuevo. Registros malformados se rechazan
// con domain.ErrIntegrity antes de llegar a la base.
func (r *StockMovementRepo) Append(m *entity.StockMovement) error {
	if m.ProductID == "" || m.WarehouseID == "" {
		return domain.ErrIntegrity
	}
	if !entity.ValidMovementType(m.Type) {
		return domain.ErrIntegrity
	}
	if !m.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrIntegrity
	}
	query := `
		INSERT INTO stock_movements (id, product_id, warehouse_id, type, quantity, transfer_group_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.WarehouseID, m.Type, m.Quantity,
		m.TransferGroupID, m.Note, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// ListByProduct historial de un producto en todas las bodegas, más
// reciente primero.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC`
	return r.list(query, productID)
}

// ListByPair movimientos de un producto en una bodega concreta.
func (r *StockMovementRepo) ListByPair(productID, warehouseID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1 AND warehouse_id = $2 ORDER BY created_at DESC`
	return r.list(query, productID, warehouseID)
}

// ListByWarehouse movimientos de una bodega, todos los productos.
func (r *StockMovementRepo) ListByWarehouse(warehouseID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE warehouse_id = $1 ORDER BY created_at DESC`
	return r.list(query, warehouseID)
}

// ListAll todos los movimientos del libro.
func (r *StockMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY created_at DESC`
	return r.list(query)
}

// AcquirePairLock toma un advisory lock transaccional sobre el par
// (producto, bodega). Es el análogo de SELECT FOR UPDATE cuando no existe
// fila que bloquear: serializa validación + append de escrituras
// concurrentes sobre el mismo par. Se libera con la transacción.
func (r *StockMovementRepo) AcquirePairLock(productID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || '/' || $2, 0))`,
		productID, warehouseID,
	)
	if err != nil {
		return fmt.Errorf("acquire pair lock: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var note *string
	if err := row.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &m.Type,
		&m.Quantity, &m.TransferGroupID, &note, &m.CreatedAt); err != nil {
		return nil, err
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}
