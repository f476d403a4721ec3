package repository

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para facturas de compra.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase, items []*entity.PurchaseItem) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	GetItems(ctx context.Context, purchaseID string) ([]*entity.PurchaseItem, error)
	GetBySupplierAndNumber(ctx context.Context, supplierID, invoiceNumber string) (*entity.Purchase, error)
	// ListByCompany filtra por proveedor cuando supplierID no es vacío.
	ListByCompany(ctx context.Context, companyID, supplierID string, limit, offset int) ([]*entity.Purchase, error)
}
