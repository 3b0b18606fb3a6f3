package usecase_test

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso CRUD
// ──────────────────────────────────────────────────────────────────────────────

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
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
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
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo(customers ...*entity.Customer) *memCustomerRepo {
	r := &memCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if c.Email != "" {
		for _, existing := range r.customers {
			if strings.EqualFold(existing.Email, c.Email) {
				return domain.ErrEmailAlreadyExists
			}
		}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *memCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCustomerRepo) Count() (int64, error) {
	return int64(len(r.customers)), nil
}

type memDemandRepo struct {
	demands map[string]*entity.Demand
	// failAfterItems > 0: Create persiste la cabecera y esa cantidad de
	// líneas, y entonces falla, dejando un registro parcial.
	failAfterItems int
}

func newMemDemandRepo() *memDemandRepo {
	return &memDemandRepo{demands: make(map[string]*entity.Demand)}
}

func (r *memDemandRepo) Create(d *entity.Demand) error {
	copied := *d
	if r.failAfterItems > 0 && len(d.Items) > r.failAfterItems {
		copied.Items = d.Items[:r.failAfterItems]
		r.demands[d.ID] = &copied
		return errors.New("insert demand item: conexión perdida")
	}
	r.demands[d.ID] = &copied
	return nil
}

func (r *memDemandRepo) GetByID(id string) (*entity.Demand, error) {
	return r.demands[id], nil
}

func (r *memDemandRepo) UpdateStatus(id, status string) error {
	d, ok := r.demands[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Status = status
	return nil
}

func (r *memDemandRepo) List(limit, offset int) ([]*entity.Demand, error) {
	var out []*entity.Demand
	for _, d := range r.demands {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDemandRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, d := range r.demands {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

type memOfferRepo struct {
	offers map[string]*entity.Offer
	// failAfterItems > 0: Create persiste la cabecera y esa cantidad de
	// líneas, y entonces falla, dejando un registro parcial.
	failAfterItems int
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{offers: make(map[string]*entity.Offer)}
}

func (r *memOfferRepo) Create(o *entity.Offer) error {
	copied := *o
	if r.failAfterItems > 0 && len(o.Items) > r.failAfterItems {
		copied.Items = o.Items[:r.failAfterItems]
		r.offers[o.ID] = &copied
		return errors.New("insert offer item: conexión perdida")
	}
	r.offers[o.ID] = &copied
	return nil
}

func (r *memOfferRepo) GetByID(id string) (*entity.Offer, error) {
	return r.offers[id], nil
}

func (r *memOfferRepo) UpdateStatus(id, status string) error {
	o, ok := r.offers[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *memOfferRepo) List(limit, offset int) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for _, o := range r.offers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOfferRepo) SumTotalAmountByStatus(status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range r.offers {
		if o.Status == status {
			sum = sum.Add(o.TotalAmount)
		}
	}
	return sum, nil
}

// memDemandTx simula la frontera transaccional: si fn falla, restaura el
// estado previo del repositorio (rollback).
type memDemandTx struct{ repo *memDemandRepo }

func (t *memDemandTx) RunDemand(fn func(repo repository.DemandRepository) error) error {
	snapshot := make(map[string]*entity.Demand, len(t.repo.demands))
	for id, d := range t.repo.demands {
		copied := *d
		snapshot[id] = &copied
	}
	if err := fn(t.repo); err != nil {
		t.repo.demands = snapshot
		return err
	}
	return nil
}

type memOfferTx struct{ repo *memOfferRepo }

func (t *memOfferTx) RunOffer(fn func(repo repository.OfferRepository) error) error {
	snapshot := make(map[string]*entity.Offer, len(t.repo.offers))
	for id, o := range t.repo.offers {
		copied := *o
		snapshot[id] = &copied
	}
	if err := fn(t.repo); err != nil {
		t.repo.offers = snapshot
		return err
	}
	return nil
}
