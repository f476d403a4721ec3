package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. VATPercent nil usa la alícuota por defecto.
type CreateProductRequest struct {
	Code               string           `json:"code" validate:"required,min=1,max=100"`
	Name               string           `json:"name" validate:"required,min=1,max=200"`
	Cost               decimal.Decimal  `json:"cost" validate:"min=0"`
	Price              decimal.Decimal  `json:"price" validate:"min=0"`
	VATPercent         *decimal.Decimal `json:"vat_percent,omitempty"`
	InternalTaxPercent decimal.Decimal  `json:"internal_tax_percent" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Cost ni Stock, que cambian con compras).
type UpdateProductRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price              *decimal.Decimal `json:"price"`
	VATPercent         *decimal.Decimal `json:"vat_percent"`
	InternalTaxPercent *decimal.Decimal `json:"internal_tax_percent"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Cost               decimal.Decimal `json:"cost"`
	Price              decimal.Decimal `json:"price"`
	Stock              decimal.Decimal `json:"stock"`
	VATPercent         decimal.Decimal `json:"vat_percent"`
	InternalTaxPercent decimal.Decimal `json:"internal_tax_percent"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
