package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); sólo tiene efecto dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStockAndCost fija stock y costo promedio tras una compra.
	UpdateStockAndCost(ctx context.Context, productID string, stock, cost decimal.Decimal) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
	// ListAllByCompany devuelve el catálogo completo (para comparar importaciones).
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
}
