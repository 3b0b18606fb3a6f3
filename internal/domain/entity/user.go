package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User usuario de la aplicación (acceso vía JWT).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
