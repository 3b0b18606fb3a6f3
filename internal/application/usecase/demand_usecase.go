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

// DemandTxRunner ejecuta fn con un repositorio de demandas atado a una
// transacción: cabecera y líneas quedan bajo una sola frontera transaccional.
type DemandTxRunner interface {
	RunDemand(fn func(repo repository.DemandRepository) error) error
}

// DemandUseCase gestiona demandas de mercancía y sus transiciones de estado.
type DemandUseCase struct {
	demandRepo  repository.DemandRepository
	productRepo repository.ProductRepository
	tx          DemandTxRunner
}

// NewDemandUseCase construye el caso de uso.
func NewDemandUseCase(demandRepo repository.DemandRepository, productRepo repository.ProductRepository, tx DemandTxRunner) *DemandUseCase {
	return &DemandUseCase{demandRepo: demandRepo, productRepo: productRepo, tx: tx}
}

// Create crea una demanda en estado DRAFT con sus líneas. Toda línea debe
// referenciar un producto existente y cantidad positiva.
func (uc *DemandUseCase) Create(in dto.CreateDemandRequest) (*dto.DemandResponse, error) {
	if in.Title == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := time.Now()
	demand := &entity.Demand{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   in.Description,
		RequesterName: in.RequesterName,
		Status:        entity.DemandStatusDraft,
		Priority:      priority,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
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
		demand.Items = append(demand.Items, entity.DemandItem{
			ID:        uuid.New().String(),
			DemandID:  demand.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}
	err := uc.tx.RunDemand(func(repo repository.DemandRepository) error {
		return repo.Create(demand)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(demand)
}

// GetByID obtiene una demanda por ID.
func (uc *DemandUseCase) GetByID(id string) (*dto.DemandResponse, error) {
	demand, err := uc.demandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(demand)
}

// List lista demandas con paginación.
func (uc *DemandUseCase) List(limit, offset int) (*dto.DemandListResponse, error) {
	list, err := uc.demandRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DemandResponse, 0, len(list))
	for _, d := range list {
		resp, err := uc.toResponse(d)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.DemandListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado con las reglas del flujo:
// una demanda CANCELLED no admite cambios; una PROCESSED solo admite
// pasar a CANCELLED.
func (uc *DemandUseCase) UpdateStatus(id, status string) (*dto.DemandResponse, error) {
	if !entity.ValidDemandStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	demand, err := uc.demandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, domain.ErrNotFound
	}
	if demand.Status == entity.DemandStatusCancelled {
		return nil, domain.ErrConflict
	}
	if demand.Status == entity.DemandStatusProcessed && status != entity.DemandStatusCancelled {
		return nil, domain.ErrConflict
	}
	if err := uc.demandRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	demand.Status = status
	return uc.toResponse(demand)
}

func (uc *DemandUseCase) toResponse(d *entity.Demand) (*dto.DemandResponse, error) {
	items := make([]dto.DemandItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		name, sku := "", ""
		if product != nil {
			name, sku = product.Name, product.SKU
		}
		items = append(items, dto.DemandItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			SKU:         sku,
			Quantity:    item.Quantity,
			Note:        item.Note,
		})
	}
	return &dto.DemandResponse{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		RequesterName: d.RequesterName,
		Status:        d.Status,
		Priority:      d.Priority,
		DueDate:       d.DueDate,
		Items:         items,
		CreatedAt:     d.CreatedAt,
	}, nil
}
