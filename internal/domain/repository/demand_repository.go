package repository

import "github.com/modus-trade/modus-api/internal/domain/entity"

// DemandRepository define el puerto de persistencia para demandas.
// Create y Update persisten la demanda junto con sus líneas.
type DemandRepository interface {
	Create(demand *entity.Demand) error
	GetByID(id string) (*entity.Demand, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Demand, error)
	CountByStatus(status string) (int64, error)
}
