// Package inventory consultas sobre los movimientos de stock que generan las compras.
package inventory

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// MovementUseCase lista el kardex de un producto.
type MovementUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(productRepo repository.ProductRepository, movementRepo repository.InventoryMovementRepository) *MovementUseCase {
	return &MovementUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// ListByProduct devuelve los movimientos del producto, más recientes primero.
// El producto debe pertenecer a la empresa del usuario.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, companyID, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.movementRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		TotalCost:  m.TotalCost,
		StockAfter: m.StockAfter,
		CostAfter:  m.CostAfter,
		Reference:  m.Reference,
		Date:       m.Date.Format("2006-01-02"),
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}
