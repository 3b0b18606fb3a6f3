package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/application/usecase"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

var (
	_ stock.TxRunner         = (*TxRunner)(nil)
	_ usecase.DemandTxRunner = (*TxRunner)(nil)
	_ usecase.OfferTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repositorio de movimientos
// atado a la tx y hace Commit o Rollback. Las dos patas de un traslado
// escritas dentro de fn quedan así bajo una sola frontera transaccional.
func (r *TxRunner) Run(ctx context.Context, fn func(movRepo repository.StockMovementRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewStockMovementRepository(q))
	})
}

// RunDemand ejecuta fn con un repositorio de demandas atado a una tx:
// cabecera y líneas se insertan o se descartan juntas.
func (r *TxRunner) RunDemand(fn func(repo repository.DemandRepository) error) error {
	return r.inTx(context.Background(), func(q Querier) error {
		return fn(NewDemandRepository(q))
	})
}

// RunOffer ejecuta fn con un repositorio de ofertas atado a una tx.
func (r *TxRunner) RunOffer(fn func(repo repository.OfferRepository) error) error {
	return r.inTx(context.Background(), func(q Querier) error {
		return fn(NewOfferRepository(q))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
