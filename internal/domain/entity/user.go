package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCompras  = "compras"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, compras, vendedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
