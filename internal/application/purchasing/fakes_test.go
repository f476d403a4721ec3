package purchasing_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}
func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) GetByCompanyAndTaxID(_ context.Context, companyID, taxID string) (*entity.Supplier, error) {
	for _, s := range r.byID {
		if s.CompanyID == companyID && s.TaxID == taxID {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSupplierRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}
func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeProductRepo struct {
	byID   map[string]*entity.Product
	failOn string
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeProductRepo) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) UpdateStockAndCost(_ context.Context, id string, stock, cost decimal.Decimal) error {
	if id == r.failOn {
		return errors.New("falla simulada")
	}
	p := r.byID[id]
	p.Stock = stock
	p.Cost = cost
	return nil
}
func (r *fakeProductRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListAllByCompany(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

type fakePurchaseRepo struct {
	byID  map[string]*entity.Purchase
	items map[string][]*entity.PurchaseItem
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *entity.Purchase, items []*entity.PurchaseItem) error {
	r.byID[p.ID] = p
	r.items[p.ID] = items
	return nil
}
func (r *fakePurchaseRepo) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	return r.byID[id], nil
}
func (r *fakePurchaseRepo) GetItems(_ context.Context, id string) ([]*entity.PurchaseItem, error) {
	return r.items[id], nil
}
func (r *fakePurchaseRepo) GetBySupplierAndNumber(_ context.Context, supplierID, number string) (*entity.Purchase, error) {
	for _, p := range r.byID {
		if p.SupplierID == supplierID && p.InvoiceNumber == number {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePurchaseRepo) ListByCompany(_ context.Context, companyID, supplierID string, _, _ int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.byID {
		if p.CompanyID == companyID && (supplierID == "" || p.SupplierID == supplierID) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, nil
}

type fakeMovementRepo struct {
	list []*entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.list = append(r.list, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.list {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTx copia el estado de los productos y lo restaura si fn falla, como un Rollback.
type fakeTx struct {
	products  *fakeProductRepo
	purchases *fakePurchaseRepo
	movements *fakeMovementRepo
	calls     int
}

func (t *fakeTx) Run(ctx context.Context, fn func(repository.ProductRepository, repository.PurchaseRepository, repository.InventoryMovementRepository) error) error {
	t.calls++
	snapshot := make(map[string]entity.Product, len(t.products.byID))
	for id, p := range t.products.byID {
		snapshot[id] = *p
	}
	purchases := make(map[string]*entity.Purchase, len(t.purchases.byID))
	for id, p := range t.purchases.byID {
		purchases[id] = p
	}
	movements := len(t.movements.list)
	if err := fn(t.products, t.purchases, t.movements); err != nil {
		for id, p := range snapshot {
			restored := p
			t.products.byID[id] = &restored
		}
		t.purchases.byID = purchases
		t.movements.list = t.movements.list[:movements]
		return err
	}
	return nil
}
