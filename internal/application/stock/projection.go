package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// Projection calcula el stock derivado a partir del libro de movimientos.
// Es un fold explícito: IN/TRANSFER_IN suman, OUT/TRANSFER_OUT restan.
// Cada llamada recalcula sobre el log completo; nada se cachea ni se
// materializa.
type Projection struct {
	movements repository.StockMovementRepository
	products  repository.ProductRepository
}

// NewProjection construye la proyección sobre un repositorio de movimientos
// (pool o tx). El repositorio de productos solo hace falta para los
// resúmenes; puede ser nil si únicamente se usa CurrentStock.
func NewProjection(movements repository.StockMovementRepository, products repository.ProductRepository) *Projection {
	return &Projection{movements: movements, products: products}
}

// CurrentStock devuelve la cantidad actual de un producto en una bodega:
// suma con signo de todos los movimientos del par. Sin movimientos, cero.
func (p *Projection) CurrentStock(productID, warehouseID string) (decimal.Decimal, error) {
	movements, err := p.movements.ListByPair(productID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Signed())
	}
	return total, nil
}

// ByWarehouse agrupa los movimientos de una bodega por producto: una fila
// por producto con al menos un movimiento allí. Nombre y SKU se resuelven
// contra el colaborador de productos al momento de proyectar.
func (p *Projection) ByWarehouse(warehouseID string) ([]dto.StockSummaryRow, error) {
	movements, err := p.movements.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return p.summarize(movements)
}

// GlobalSummary agrupa todos los movimientos por producto, sin distinguir
// bodega.
func (p *Projection) GlobalSummary() ([]dto.StockSummaryRow, error) {
	movements, err := p.movements.ListAll()
	if err != nil {
		return nil, err
	}
	return p.summarize(movements)
}

// History devuelve los movimientos de un producto en todas las bodegas,
// del más reciente al más antiguo.
func (p *Projection) History(productID string) ([]*entity.StockMovement, error) {
	return p.movements.ListByProduct(productID)
}

// summarize hace el fold por producto y resuelve nombre/SKU.
// Ordena por SKU para que la salida sea determinista.
func (p *Projection) summarize(movements []*entity.StockMovement) ([]dto.StockSummaryRow, error) {
	totals := make(map[string]decimal.Decimal)
	for _, m := range movements {
		totals[m.ProductID] = totals[m.ProductID].Add(m.Signed())
	}
	rows := make([]dto.StockSummaryRow, 0, len(totals))
	for productID, qty := range totals {
		product, err := p.products.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		rows = append(rows, dto.StockSummaryRow{
			ProductID:   productID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    qty,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SKU < rows[j].SKU })
	return rows, nil
}
