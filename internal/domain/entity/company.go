package entity

import "time"

// Company representa la distribuidora (tenant). TaxID en formato 2-8-1.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
