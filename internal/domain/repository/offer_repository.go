package repository

import (
	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/domain/entity"
)

// OfferRepository define el puerto de persistencia para ofertas.
type OfferRepository interface {
	Create(offer *entity.Offer) error
	GetByID(id string) (*entity.Offer, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Offer, error)
	SumTotalAmountByStatus(status string) (decimal.Decimal, error)
}
