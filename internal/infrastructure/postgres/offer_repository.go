package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador.
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

// Create persiste una oferta con sus líneas.
func (r *OfferRepo) Create(o *entity.Offer) error {
	query := `
		INSERT INTO offers (id, demand_id, customer_id, status, total_amount, currency, valid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.DemandID, o.CustomerID, o.Status, o.TotalAmount, o.Currency,
		o.ValidUntil, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	for _, item := range o.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO offer_items (id, offer_id, product_id, quantity, unit_price, discount, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.OfferID, item.ProductID, item.Quantity,
			item.UnitPrice, item.Discount, item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("insert offer item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una oferta con sus líneas.
func (r *OfferRepo) GetByID(id string) (*entity.Offer, error) {
	query := `
		SELECT id, demand_id, customer_id, status, total_amount, currency, valid_until, created_at, updated_at
		FROM offers WHERE id = $1`
	var o entity.Offer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.DemandID, &o.CustomerID, &o.Status, &o.TotalAmount,
		&o.Currency, &o.ValidUntil, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateStatus cambia solo el estado.
func (r *OfferRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE offers SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update offer status: %w", err)
	}
	return nil
}

// List lista ofertas con sus líneas, más recientes primero.
func (r *OfferRepo) List(limit, offset int) ([]*entity.Offer, error) {
	query := `
		SELECT id, demand_id, customer_id, status, total_amount, currency, valid_until, created_at, updated_at
		FROM offers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.DemandID, &o.CustomerID, &o.Status,
			&o.TotalAmount, &o.Currency, &o.ValidUntil, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.loadItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// SumTotalAmountByStatus suma los montos de las ofertas en un estado.
func (r *OfferRepo) SumTotalAmountByStatus(status string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0) FROM offers WHERE status = $1`, status).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum offers: %w", err)
	}
	return sum, nil
}

func (r *OfferRepo) loadItems(offerID string) ([]entity.OfferItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, offer_id, product_id, quantity, unit_price, discount, total_price
		FROM offer_items WHERE offer_id = $1`, offerID)
	if err != nil {
		return nil, fmt.Errorf("list offer items: %w", err)
	}
	defer rows.Close()
	var items []entity.OfferItem
	for rows.Next() {
		var item entity.OfferItem
		if err := rows.Scan(&item.ID, &item.OfferID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Discount, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan offer item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
