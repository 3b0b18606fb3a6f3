package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, address, tax_id, type, created_at, updated_at`

// Create persiste un cliente nuevo. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, address, tax_id, type, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.TaxID, c.Type, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail obtiene un cliente por email.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

func (r *CustomerRepo) scanOne(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var email *string
	err := row.Scan(&c.ID, &c.Name, &email, &c.Phone, &c.Address, &c.TaxID,
		&c.Type, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if email != nil {
		c.Email = *email
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = NULLIF($3, ''), phone = $4, address = $5, tax_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.TaxID, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var email *string
		if err := rows.Scan(&c.ID, &c.Name, &email, &c.Phone, &c.Address,
			&c.TaxID, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		if email != nil {
			c.Email = *email
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count total de clientes.
func (r *CustomerRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
