package catalogimport_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/catalogimport"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memProducts struct {
	byID map[string]*entity.Product
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p := r.byID[id]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProducts) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && strings.EqualFold(p.Code, code) {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memProducts) UpdateStockAndCost(_ context.Context, id string, stock, cost decimal.Decimal) error {
	r.byID[id].Stock, r.byID[id].Cost = stock, cost
	return nil
}
func (r *memProducts) ListByCompany(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProducts) ListAllByCompany(_ context.Context, companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memTx struct{ repo *memProducts }

func (t memTx) RunProducts(ctx context.Context, fn func(repository.ProductRepository) error) error {
	return fn(t.repo)
}

// slowTx serializa las transacciones y las demora, como una fila bloqueada.
type slowTx struct {
	mu    sync.Mutex
	repo  *memProducts
	delay time.Duration
}

func (t *slowTx) RunProducts(ctx context.Context, fn func(repository.ProductRepository) error) error {
	time.Sleep(t.delay)
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.repo)
}

func newUseCase() (*catalogimport.ImportUseCase, *memProducts) {
	repo := &memProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", CompanyID: "c1", Code: "A1", Name: "Yerba Mate 1kg", Cost: d("1000"), Price: d("1500"), Stock: d("7")},
		"p2": {ID: "p2", CompanyID: "c1", Code: "B2", Name: "Azúcar 1kg", Cost: d("500"), Price: d("800")},
	}}
	uc := catalogimport.NewImportUseCase(repo, memTx{repo: repo}, catalogimport.Config{DefaultVATPercent: d("21")}, nil)
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Preview + Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestPreviewYApply(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	csv := "codigo;descripcion;costo;precio\n" +
		"A1;Yerba Mate 1kg;1.100,00;\n" +
		"B2;Azúcar 1kg;500;800\n" +
		"C3;Fideos 500g;700;1050\n" +
		"D4;;10;\n"

	prev, err := uc.PreviewCSV(ctx, "c1", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, dto.ImportSummary{New: 1, Updated: 1, Unchanged: 1, Invalid: 1}, prev.Summary)
	require.Len(t, prev.Updated, 1)
	assert.Equal(t, "p1", prev.Updated[0].ProductID)
	assert.True(t, d("10").Equal(prev.Updated[0].CostChangePercent))
	assert.Nil(t, prev.Updated[0].NewPrice)
	assert.Len(t, repo.byID, 2, "la vista previa no escribe")

	res, err := uc.Apply(ctx, "c1", prev.PreviewID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)

	p1 := repo.byID["p1"]
	assert.True(t, d("1100").Equal(p1.Cost))
	assert.True(t, d("1500").Equal(p1.Price), "sin precio en la fila se conserva el actual")
	assert.True(t, d("7").Equal(p1.Stock), "la importación no toca el stock")

	created, _ := repo.GetByCompanyAndCode(ctx, "c1", "C3")
	require.NotNil(t, created)
	assert.True(t, d("21").Equal(created.VATPercent))
	assert.True(t, created.Stock.IsZero())

	_, err = uc.Apply(ctx, "c1", prev.PreviewID)
	assert.ErrorIs(t, err, domain.ErrPreviewExpired, "la vista previa se consume")
}

func TestApply_OtraEmpresa(t *testing.T) {
	uc, _ := newUseCase()
	prev, err := uc.PreviewRows(context.Background(), "c1", []dto.ImportRowRequest{{Code: "Z9", Name: "Nuevo", Cost: "1"}})
	require.NoError(t, err)

	_, err = uc.Apply(context.Background(), "c2", prev.PreviewID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApply_IDDesconocido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Apply(context.Background(), "c1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrPreviewExpired)
}

func TestApply_CodigoCreadoEntrePreviewYApply(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	prev, err := uc.PreviewRows(ctx, "c1", []dto.ImportRowRequest{{Code: "N1", Name: "Nuevo", Cost: "10"}})
	require.NoError(t, err)

	repo.byID["px"] = &entity.Product{ID: "px", CompanyID: "c1", Code: "N1", Name: "Otro"}

	_, err = uc.Apply(ctx, "c1", prev.PreviewID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// la transacción falló: la vista previa sigue disponible
	delete(repo.byID, "px")
	res, err := uc.Apply(ctx, "c1", prev.PreviewID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
}

func TestApply_ConcurrenteSeAplicaUnaVez(t *testing.T) {
	repo := &memProducts{byID: map[string]*entity.Product{}}
	uc := catalogimport.NewImportUseCase(repo, &slowTx{repo: repo, delay: 50 * time.Millisecond}, catalogimport.Config{DefaultVATPercent: d("21")}, nil)
	ctx := context.Background()

	prev, err := uc.PreviewRows(ctx, "c1", []dto.ImportRowRequest{{Name: "Fideos", Cost: "700"}})
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Apply(ctx, "c1", prev.PreviewID)
		}(i)
	}
	wg.Wait()

	var ok, expired int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrPreviewExpired):
			expired++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, expired)
	assert.Len(t, repo.byID, 1, "el producto sin código se crea una sola vez")
}

func TestPreviewRows_Vacio(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.PreviewRows(context.Background(), "c1", nil)
	assert.ErrorIs(t, err, catalogimport.ErrEmptyFile)
}
