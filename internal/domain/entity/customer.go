package entity

import "time"

// Tipos de cliente.
const (
	CustomerTypeCompany    = "COMPANY"
	CustomerTypeIndividual = "INDIVIDUAL"
)

// Customer representa un cliente de la operación comercial.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxID     string
	Type      string // COMPANY | INDIVIDUAL
	CreatedAt time.Time
	UpdatedAt time.Time
}
