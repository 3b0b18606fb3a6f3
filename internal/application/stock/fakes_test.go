package stock_test

import (
	"context"
	"sort"

	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: libro de movimientos, productos, bodegas y TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// memMovementRepo implementación en memoria del libro, append-only.
type memMovementRepo struct {
	movements []*entity.StockMovement
	failAfter int // si >= 0, Append falla cuando ya hay esa cantidad de filas
}

func newMemMovementRepo() *memMovementRepo {
	return &memMovementRepo{failAfter: -1}
}

func (r *memMovementRepo) Append(m *entity.StockMovement) error {
	if m.ProductID == "" || m.WarehouseID == "" ||
		!entity.ValidMovementType(m.Type) || !m.Quantity.IsPositive() {
		return domain.ErrIntegrity
	}
	if r.failAfter >= 0 && len(r.movements) >= r.failAfter {
		return domain.ErrIntegrity
	}
	copied := *m
	r.movements = append(r.movements, &copied)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool {
		return m.ProductID == productID
	}), nil
}

func (r *memMovementRepo) ListByPair(productID, warehouseID string) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool {
		return m.ProductID == productID && m.WarehouseID == warehouseID
	}), nil
}

func (r *memMovementRepo) ListByWarehouse(warehouseID string) ([]*entity.StockMovement, error) {
	return r.filter(func(m *entity.StockMovement) bool {
		return m.WarehouseID == warehouseID
	}), nil
}

func (r *memMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	return r.filter(func(*entity.StockMovement) bool { return true }), nil
}

func (r *memMovementRepo) AcquirePairLock(productID, warehouseID string) error {
	return nil
}

// filter devuelve los movimientos que cumplen el predicado, ordenados por
// created_at descendente como el adaptador real.
func (r *memMovementRepo) filter(keep func(*entity.StockMovement) bool) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// memTxRunner simula la transacción: si fn falla, restaura el libro al
// estado previo (rollback).
type memTxRunner struct {
	repo *memMovementRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository) error) error {
	snapshot := make([]*entity.StockMovement, len(t.repo.movements))
	copy(snapshot, t.repo.movements)
	if err := fn(t.repo); err != nil {
		t.repo.movements = snapshot
		return err
	}
	return nil
}

// memProductRepo productos en memoria.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *memProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

// memWarehouseRepo bodegas en memoria.
type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newMemWarehouseRepo(warehouses ...*entity.Warehouse) *memWarehouseRepo {
	r := &memWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, w := range warehouses {
		r.warehouses[w.ID] = w
	}
	return r
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
