package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

type stubProducts struct {
	repository.ProductRepository
	byID map[string]*entity.Product
}

func (r stubProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

type stubMovements struct {
	list []*entity.InventoryMovement
}

func (r *stubMovements) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.list = append(r.list, m)
	return nil
}

func (r *stubMovements) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.list {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestListByProduct(t *testing.T) {
	products := stubProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", CompanyID: "c1"},
		"p2": {ID: "p2", CompanyID: "c2"},
	}}
	movements := &stubMovements{list: []*entity.InventoryMovement{{
		ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN,
		Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(90),
		StockAfter: decimal.NewFromInt(20), CostAfter: decimal.NewFromInt(85),
		Reference: "purchase-1", Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}}}
	uc := inventory.NewMovementUseCase(products, movements)

	out, err := uc.ListByProduct(context.Background(), "c1", "p1", 20, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-03-15", out[0].Date)
	assert.Equal(t, "purchase-1", out[0].Reference)
	assert.True(t, decimal.NewFromInt(85).Equal(out[0].CostAfter))

	_, err = uc.ListByProduct(context.Background(), "c1", "p2", 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListByProduct(context.Background(), "c1", "nope", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
