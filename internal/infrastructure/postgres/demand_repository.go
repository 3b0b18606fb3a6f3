package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

var _ repository.DemandRepository = (*DemandRepo)(nil)

// DemandRepo implementación del puerto DemandRepository sobre PostgreSQL.
// Las líneas viven en demand_items y se cargan junto con la demanda.
type DemandRepo struct {
	q Querier
}

// NewDemandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDemandRepository(q Querier) *DemandRepo {
	return &DemandRepo{q: q}
}

// Create persiste una demanda con sus líneas.
func (r *DemandRepo) Create(d *entity.Demand) error {
	query := `
		INSERT INTO demands (id, title, description, requester_name, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Title, d.Description, d.RequesterName, d.Status, d.Priority,
		d.DueDate, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert demand: %w", err)
	}
	for _, item := range d.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO demand_items (id, demand_id, product_id, quantity, note)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.DemandID, item.ProductID, item.Quantity, item.Note,
		)
		if err != nil {
			return fmt.Errorf("insert demand item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una demanda con sus líneas.
func (r *DemandRepo) GetByID(id string) (*entity.Demand, error) {
	query := `
		SELECT id, title, description, requester_name, status, priority, due_date, created_at, updated_at
		FROM demands WHERE id = $1`
	var d entity.Demand
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.RequesterName, &d.Status,
		&d.Priority, &d.DueDate, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get demand: %w", err)
	}
	items, err := r.loadItems(d.ID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

// UpdateStatus cambia solo el estado (las demandas no se editan).
func (r *DemandRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE demands SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update demand status: %w", err)
	}
	return nil
}

// List lista demandas con sus líneas, más recientes primero.
func (r *DemandRepo) List(limit, offset int) ([]*entity.Demand, error) {
	query := `
		SELECT id, title, description, requester_name, status, priority, due_date, created_at, updated_at
		FROM demands ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Demand
	for rows.Next() {
		var d entity.Demand
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.RequesterName,
			&d.Status, &d.Priority, &d.DueDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan demand: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		items, err := r.loadItems(d.ID)
		if err != nil {
			return nil, err
		}
		d.Items = items
	}
	return list, nil
}

// CountByStatus cuenta demandas en un estado.
func (r *DemandRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM demands WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count demands: %w", err)
	}
	return n, nil
}

func (r *DemandRepo) loadItems(demandID string) ([]entity.DemandItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, demand_id, product_id, quantity, note
		FROM demand_items WHERE demand_id = $1`, demandID)
	if err != nil {
		return nil, fmt.Errorf("list demand items: %w", err)
	}
	defer rows.Close()
	var items []entity.DemandItem
	for rows.Next() {
		var item entity.DemandItem
		if err := rows.Scan(&item.ID, &item.DemandID, &item.ProductID,
			&item.Quantity, &item.Note); err != nil {
			return nil, fmt.Errorf("scan demand item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
