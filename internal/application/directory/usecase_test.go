package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/directory"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

type memCustomers struct{ byID map[string]*entity.Customer }

func (r *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}
func (r *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.byID[id], nil
}
func (r *memCustomers) GetByCompanyAndTaxID(_ context.Context, companyID, taxID string) (*entity.Customer, error) {
	for _, c := range r.byID {
		if c.CompanyID == companyID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomers) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.byID {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}
func (r *memCustomers) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type memSuppliers struct{ byID map[string]*entity.Supplier }

func (r *memSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}
func (r *memSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *memSuppliers) GetByCompanyAndTaxID(_ context.Context, companyID, taxID string) (*entity.Supplier, error) {
	for _, s := range r.byID {
		if s.CompanyID == companyID && s.TaxID == taxID {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSuppliers) ListByCompany(context.Context, string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memSuppliers) Update(_ context.Context, s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}
func (r *memSuppliers) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_DNISeGuardaCanonico(t *testing.T) {
	repo := &memCustomers{byID: map[string]*entity.Customer{}}
	uc := directory.NewCustomerUseCase(repo, false)

	resp, err := uc.Create(context.Background(), "c1", dto.CreateCustomerRequest{
		Name: " Almacén Don Pepe ", DocumentType: "dni", DocumentNumber: "5.123.456",
	})
	require.NoError(t, err)

	assert.Equal(t, "Almacén Don Pepe", resp.Name)
	assert.Equal(t, "00-05123456-0", resp.TaxID)
	assert.Equal(t, "DNI", resp.DocumentType)
	assert.Equal(t, "5123456", resp.DocumentNumber)
	assert.Equal(t, "00-05123456-0", repo.byID[resp.ID].TaxID)
}

func TestCustomerCreate_CUIT(t *testing.T) {
	uc := directory.NewCustomerUseCase(&memCustomers{byID: map[string]*entity.Customer{}}, false)
	resp, err := uc.Create(context.Background(), "c1", dto.CreateCustomerRequest{
		Name: "Kiosco", DocumentType: "CUIT", DocumentNumber: "20123456786",
	})
	require.NoError(t, err)
	assert.Equal(t, "20-12345678-6", resp.TaxID)
	assert.Equal(t, "CUIT", resp.DocumentType)
	assert.Equal(t, "20-12345678-6", resp.DocumentNumber)
}

func TestCustomerCreate_CUITConFormaDeDNI(t *testing.T) {
	repo := &memCustomers{byID: map[string]*entity.Customer{}}
	uc := directory.NewCustomerUseCase(repo, false)

	for _, number := range []string{"00-12345678-0", "00123456780"} {
		_, err := uc.Create(context.Background(), "c1", dto.CreateCustomerRequest{
			Name: "X", DocumentType: "CUIT", DocumentNumber: number,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDocument, "%q se leería como DNI", number)
	}
	assert.Empty(t, repo.byID)
}

func TestCustomerCreate_CUITEstricto(t *testing.T) {
	uc := directory.NewCustomerUseCase(&memCustomers{byID: map[string]*entity.Customer{}}, true)
	ctx := context.Background()

	_, err := uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "X", DocumentType: "CUIT", DocumentNumber: "20-12345678-9"})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	resp, err := uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "X", DocumentType: "CUIT", DocumentNumber: "20-12345678-6"})
	require.NoError(t, err)
	assert.Equal(t, "CUIT", resp.DocumentType)

	_, err = uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "Y", DocumentType: "DNI", DocumentNumber: "30111222"})
	assert.NoError(t, err, "el modo estricto no afecta a los DNI")
}

func TestCustomerCreate_Errores(t *testing.T) {
	repo := &memCustomers{byID: map[string]*entity.Customer{}}
	uc := directory.NewCustomerUseCase(repo, false)
	ctx := context.Background()

	_, err := uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "X", DocumentType: "DNI", DocumentNumber: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "X", DocumentType: "PASAPORTE", DocumentNumber: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "  ", DocumentType: "DNI", DocumentNumber: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "A", DocumentType: "DNI", DocumentNumber: "12345678"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "B", DocumentType: "DNI", DocumentNumber: "12.345.678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "c2", dto.CreateCustomerRequest{Name: "B", DocumentType: "DNI", DocumentNumber: "12345678"})
	assert.NoError(t, err, "otra empresa puede tener el mismo documento")
}

func TestCustomerUpdateYDelete(t *testing.T) {
	repo := &memCustomers{byID: map[string]*entity.Customer{}}
	uc := directory.NewCustomerUseCase(repo, false)
	ctx := context.Background()

	a, err := uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "A", DocumentType: "DNI", DocumentNumber: "11111111"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, "c1", dto.CreateCustomerRequest{Name: "B", DocumentType: "DNI", DocumentNumber: "22222222"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "c1", b.ID, dto.CreateCustomerRequest{Name: "B", DocumentType: "DNI", DocumentNumber: "11111111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	upd, err := uc.Update(ctx, "c1", b.ID, dto.CreateCustomerRequest{Name: "B2", DocumentType: "CUIT", DocumentNumber: "20-12345678-6"})
	require.NoError(t, err)
	assert.Equal(t, "B2", upd.Name)
	assert.Equal(t, "20-12345678-6", upd.TaxID)

	_, err = uc.GetByID(ctx, "c2", a.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(ctx, "c1", a.ID))
	_, err = uc.GetByID(ctx, "c1", a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, "c1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierCreate_ActivoPorDefecto(t *testing.T) {
	repo := &memSuppliers{byID: map[string]*entity.Supplier{}}
	uc := directory.NewSupplierUseCase(repo, false)

	resp, err := uc.Create(context.Background(), "c1", dto.CreateSupplierRequest{
		Name: "Distribuidora Norte", DocumentType: "CUIT", DocumentNumber: "20-12345678-6",
		ContactName: " Marta ", PaymentTerms: "30 días",
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, "Marta", resp.ContactName)
	assert.Equal(t, "20-12345678-6", resp.TaxID)
}

func TestSupplierUpdate_Desactivar(t *testing.T) {
	repo := &memSuppliers{byID: map[string]*entity.Supplier{}}
	uc := directory.NewSupplierUseCase(repo, false)
	ctx := context.Background()

	s, err := uc.Create(ctx, "c1", dto.CreateSupplierRequest{Name: "N", DocumentType: "DNI", DocumentNumber: "30111222"})
	require.NoError(t, err)

	off := false
	upd, err := uc.Update(ctx, "c1", s.ID, dto.CreateSupplierRequest{Name: "N", DocumentType: "DNI", DocumentNumber: "30111222", Active: &off})
	require.NoError(t, err)
	assert.False(t, upd.Active)
	assert.Equal(t, "30111222", upd.DocumentNumber)

	_, err = uc.Update(ctx, "c1", s.ID, dto.CreateSupplierRequest{Name: "N", DocumentType: "CUIT", DocumentNumber: "20-1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = uc.Get(ctx, "c9", s.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
