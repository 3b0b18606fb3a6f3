package stock

import (
	"context"

	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de movimientos atado a esa tx. Garantiza que las dos patas de
// un traslado se apliquen como unidad atómica: o ambas quedan escritas o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.StockMovementRepository) error) error
}
