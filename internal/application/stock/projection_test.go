package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/domain/entity"
)

// seedMovement agrega un movimiento directamente al libro en memoria.
func seedMovement(t *testing.T, repo *memMovementRepo, productID, warehouseID, movType string, qty int64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Append(&entity.StockMovement{
		ID:          productID + warehouseID + movType + at.String(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Type:        movType,
		Quantity:    decimal.NewFromInt(qty),
		CreatedAt:   at,
	}))
}

// Sin movimientos, el stock de cualquier par es cero.
func TestProjection_SinMovimientosEsCero(t *testing.T) {
	p := stock.NewProjection(newMemMovementRepo(), nil)
	qty, err := p.CurrentStock("prod", "wh")
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

// El fold aplica el signo por tipo: IN/TRANSFER_IN suman, OUT/TRANSFER_OUT
// restan.
func TestProjection_SignosPorTipo(t *testing.T) {
	repo := newMemMovementRepo()
	now := time.Now()
	seedMovement(t, repo, "prod", "wh", entity.MovementTypeIN, 100, now)
	seedMovement(t, repo, "prod", "wh", entity.MovementTypeOUT, 30, now.Add(time.Second))
	seedMovement(t, repo, "prod", "wh", entity.MovementTypeTRANSFERIN, 15, now.Add(2*time.Second))
	seedMovement(t, repo, "prod", "wh", entity.MovementTypeTRANSFEROUT, 5, now.Add(3*time.Second))

	qty, err := stock.NewProjection(repo, nil).CurrentStock("prod", "wh")
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(80)), "100 - 30 + 15 - 5 = 80")
}

// El resumen por bodega agrupa por producto, resuelve nombre y SKU, y sale
// ordenado por SKU.
func TestProjection_ResumenPorBodega(t *testing.T) {
	repo := newMemMovementRepo()
	now := time.Now()
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeIN, 10, now)
	seedMovement(t, repo, "p2", "wh1", entity.MovementTypeIN, 20, now)
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeOUT, 3, now.Add(time.Second))
	// Movimiento en otra bodega: no debe aparecer en el resumen de wh1.
	seedMovement(t, repo, "p1", "wh2", entity.MovementTypeIN, 99, now)

	products := newMemProductRepo(
		&entity.Product{ID: "p1", SKU: "ZZZ-001", Name: "Zanahoria"},
		&entity.Product{ID: "p2", SKU: "AAA-001", Name: "Arroz"},
	)

	rows, err := stock.NewProjection(repo, products).ByWarehouse("wh1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AAA-001", rows[0].SKU, "el resumen sale ordenado por SKU")
	assert.Equal(t, "Arroz", rows[0].ProductName)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, "ZZZ-001", rows[1].SKU)
	assert.True(t, rows[1].Quantity.Equal(decimal.NewFromInt(7)))
}

// El resumen global suma entre bodegas; las patas de un traslado se anulan.
func TestProjection_ResumenGlobal(t *testing.T) {
	repo := newMemMovementRepo()
	now := time.Now()
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeIN, 50, now)
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeTRANSFEROUT, 20, now.Add(time.Second))
	seedMovement(t, repo, "p1", "wh2", entity.MovementTypeTRANSFERIN, 20, now.Add(time.Second))

	products := newMemProductRepo(&entity.Product{ID: "p1", SKU: "CAF-001", Name: "Café"})

	rows, err := stock.NewProjection(repo, products).GlobalSummary()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(decimal.NewFromInt(50)),
		"un traslado no cambia el total global")
}

// El historial sale del más reciente al más antiguo.
func TestProjection_HistorialOrdenDescendente(t *testing.T) {
	repo := newMemMovementRepo()
	base := time.Now()
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeIN, 1, base)
	seedMovement(t, repo, "p1", "wh2", entity.MovementTypeIN, 2, base.Add(time.Minute))
	seedMovement(t, repo, "p1", "wh1", entity.MovementTypeOUT, 1, base.Add(2*time.Minute))

	movements, err := stock.NewProjection(repo, nil).History("p1")
	require.NoError(t, err)
	require.Len(t, movements, 3)
	for i := 1; i < len(movements); i++ {
		assert.False(t, movements[i].CreatedAt.After(movements[i-1].CreatedAt),
			"el historial no debe ir hacia adelante en el tiempo")
	}
}
