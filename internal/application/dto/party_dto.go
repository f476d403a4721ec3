package dto

import "time"

// Clientes y proveedores comparten la identificación: document_type (CUIT|DNI)
// y document_number tal como lo tipeó el usuario. La API guarda la forma
// canónica y en las respuestas devuelve ambos campos ya decodificados.

// CreateCustomerRequest body para POST /api/customers y PUT /api/customers/:id.
type CreateCustomerRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	DocumentType   string `json:"document_type" validate:"required,oneof=CUIT DNI cuit dni"`
	DocumentNumber string `json:"document_number" validate:"required,taxdoc=DocumentType"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Name           string    `json:"name"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	TaxID          string    `json:"tax_id"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateSupplierRequest body para POST /api/suppliers y PUT /api/suppliers/:id.
type CreateSupplierRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	DocumentType   string `json:"document_type" validate:"required,oneof=CUIT DNI cuit dni"`
	DocumentNumber string `json:"document_number" validate:"required,taxdoc=DocumentType"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	ContactName    string `json:"contact_name,omitempty"`
	PaymentTerms   string `json:"payment_terms,omitempty"`
	Active         *bool  `json:"active,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Name           string    `json:"name"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	TaxID          string    `json:"tax_id"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	ContactName    string    `json:"contact_name,omitempty"`
	PaymentTerms   string    `json:"payment_terms,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
