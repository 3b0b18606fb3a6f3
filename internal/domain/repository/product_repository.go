package repository

import "github.com/modus-trade/modus-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List pagina con limit/offset; limit <= 0 devuelve todos los productos.
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int64, error)
}
