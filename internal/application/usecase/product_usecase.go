package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU es inmutable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación. Con q no vacío filtra por nombre o
// SKU ignorando mayúsculas y tildes ("cafe" encuentra "Café"); el filtro
// corre sobre el conjunto completo y la paginación se aplica al resultado,
// para no perder coincidencias fuera de la página.
func (uc *ProductUseCase) List(q string, limit, offset int) (*dto.ProductListResponse, error) {
	var list []*entity.Product
	var err error
	if q == "" {
		list, err = uc.repo.List(limit, offset)
		if err != nil {
			return nil, err
		}
	} else {
		all, err := uc.repo.List(0, 0)
		if err != nil {
			return nil, err
		}
		needle := normalizeSearch(q)
		var filtered []*entity.Product
		for _, p := range all {
			if strings.Contains(normalizeSearch(p.Name), needle) ||
				strings.Contains(normalizeSearch(p.SKU), needle) {
				filtered = append(filtered, p)
			}
		}
		list = paginate(filtered, limit, offset)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// paginate aplica limit/offset sobre una lista ya filtrada. limit <= 0
// devuelve todo desde offset.
func paginate(list []*entity.Product, limit, offset int) []*entity.Product {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// normalizeSearch pasa a minúsculas y elimina marcas diacríticas (NFD +
// remoción de Mn) para comparaciones insensibles a tildes.
func normalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		UnitPrice:   p.UnitPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
