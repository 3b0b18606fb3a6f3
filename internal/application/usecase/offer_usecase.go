package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// OfferTxRunner ejecuta fn con un repositorio de ofertas atado a una
// transacción: cabecera y líneas quedan bajo una sola frontera transaccional.
type OfferTxRunner interface {
	RunOffer(fn func(repo repository.OfferRepository) error) error
}

// OfferUseCase gestiona ofertas a clientes y sus transiciones de estado.
type OfferUseCase struct {
	offerRepo    repository.OfferRepository
	demandRepo   repository.DemandRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	tx           OfferTxRunner
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(
	offerRepo repository.OfferRepository,
	demandRepo repository.DemandRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	tx OfferTxRunner,
) *OfferUseCase {
	return &OfferUseCase{
		offerRepo:    offerRepo,
		demandRepo:   demandRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
	}
}

// Create crea una oferta en estado DRAFT. El total de cada línea es
// cantidad*precio - descuento, y el total de la oferta la suma de líneas.
func (uc *OfferUseCase) Create(in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.DemandID != nil {
		demand, err := uc.demandRepo.GetByID(*in.DemandID)
		if err != nil {
			return nil, err
		}
		if demand == nil {
			return nil, domain.ErrNotFound
		}
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	now := time.Now()
	offer := &entity.Offer{
		ID:         uuid.New().String(),
		DemandID:   in.DemandID,
		CustomerID: in.CustomerID,
		Status:     entity.OfferStatusDraft,
		Currency:   currency,
		ValidUntil: in.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	total := decimal.Zero
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		discount := decimal.Zero
		if item.Discount != nil {
			discount = *item.Discount
		}
		lineTotal := item.UnitPrice.Mul(item.Quantity).Sub(discount)
		offer.Items = append(offer.Items, entity.OfferItem{
			ID:         uuid.New().String(),
			OfferID:    offer.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Discount:   discount,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	offer.TotalAmount = total
	err = uc.tx.RunOffer(func(repo repository.OfferRepository) error {
		return repo.Create(offer)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(offer)
}

// GetByID obtiene una oferta por ID.
func (uc *OfferUseCase) GetByID(id string) (*dto.OfferResponse, error) {
	offer, err := uc.offerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(offer)
}

// List lista ofertas con paginación.
func (uc *OfferUseCase) List(limit, offset int) (*dto.OfferListResponse, error) {
	list, err := uc.offerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		resp, err := uc.toResponse(o)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.OfferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado. Una oferta finalizada (ACCEPTED o
// REJECTED) queda congelada.
func (uc *OfferUseCase) UpdateStatus(id, status string) (*dto.OfferResponse, error) {
	if !entity.ValidOfferStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	offer, err := uc.offerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	if offer.Finalized() {
		return nil, domain.ErrConflict
	}
	if err := uc.offerRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	offer.Status = status
	return uc.toResponse(offer)
}

func (uc *OfferUseCase) toResponse(o *entity.Offer) (*dto.OfferResponse, error) {
	customer, err := uc.customerRepo.GetByID(o.CustomerID)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer != nil {
		customerName = customer.Name
	}
	items := make([]dto.OfferItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		name, sku := "", ""
		if product != nil {
			name, sku = product.Name, product.SKU
		}
		items = append(items, dto.OfferItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			SKU:         sku,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			TotalPrice:  item.TotalPrice,
		})
	}
	return &dto.OfferResponse{
		ID:           o.ID,
		DemandID:     o.DemandID,
		CustomerID:   o.CustomerID,
		CustomerName: customerName,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		Currency:     o.Currency,
		ValidUntil:   o.ValidUntil,
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}, nil
}
