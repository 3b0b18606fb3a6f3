package stock

import (
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// Queries expone el lado de lectura del libro para HTTP: proyección más
// resolución de nombres. Sin estado propio; cada consulta relee el log.
type Queries struct {
	projection    *Projection
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewQueries construye las consultas de stock.
func NewQueries(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *Queries {
	return &Queries{
		projection:    NewProjection(movRepo, productRepo),
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CurrentStock cantidad actual de un producto en una bodega.
func (q *Queries) CurrentStock(productID, warehouseID string) (decimal.Decimal, error) {
	if err := q.mustWarehouse(warehouseID); err != nil {
		return decimal.Zero, err
	}
	if err := q.mustProduct(productID); err != nil {
		return decimal.Zero, err
	}
	return q.projection.CurrentStock(productID, warehouseID)
}

// Overview resumen de stock por producto en una bodega.
func (q *Queries) Overview(warehouseID string) ([]dto.StockSummaryRow, error) {
	if err := q.mustWarehouse(warehouseID); err != nil {
		return nil, err
	}
	return q.projection.ByWarehouse(warehouseID)
}

// GlobalOverview resumen de stock por producto sobre todas las bodegas.
func (q *Queries) GlobalOverview() ([]dto.StockSummaryRow, error) {
	return q.projection.GlobalSummary()
}

// History historial de un producto (más reciente primero) con nombres de
// producto y bodega resueltos.
func (q *Queries) History(productID string) ([]dto.MovementResponse, error) {
	product, err := q.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := q.projection.History(productID)
	if err != nil {
		return nil, err
	}
	warehouseNames := make(map[string]string)
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		name, ok := warehouseNames[m.WarehouseID]
		if !ok {
			warehouse, err := q.warehouseRepo.GetByID(m.WarehouseID)
			if err != nil {
				return nil, err
			}
			if warehouse != nil {
				name = warehouse.Name
			}
			warehouseNames[m.WarehouseID] = name
		}
		out = append(out, dto.MovementResponse{
			ID:              m.ID,
			ProductName:     product.Name,
			WarehouseName:   name,
			Type:            m.Type,
			Quantity:        m.Quantity,
			TransferGroupID: m.TransferGroupID,
			Note:            m.Note,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, nil
}

func (q *Queries) mustProduct(id string) error {
	product, err := q.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (q *Queries) mustWarehouse(id string) error {
	warehouse, err := q.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}
