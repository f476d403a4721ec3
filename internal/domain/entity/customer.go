package entity

import "time"

// Customer representa un cliente de la distribuidora.
// TaxID guarda la forma canónica NN-XXXXXXXX-N (CUIT, o DNI como 00-XXXXXXXX-0).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
