package entity

import "time"

// Supplier representa un proveedor. TaxID con la misma codificación que Customer.
type Supplier struct {
	ID           string
	CompanyID    string
	Name         string
	TaxID        string
	Email        string
	Phone        string
	Address      string
	ContactName  string
	PaymentTerms string // ej. "contado", "30 días"
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
