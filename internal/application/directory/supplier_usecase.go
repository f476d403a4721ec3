package directory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo       repository.SupplierRepository
	strictCUIT bool
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, strictCUIT bool) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, strictCUIT: strictCUIT}
}

// Create da de alta un proveedor (activo salvo que se indique lo contrario).
func (uc *SupplierUseCase) Create(ctx context.Context, companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	taxID, err := canonicalTaxID(in.DocumentType, in.DocumentNumber, uc.strictCUIT)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndTaxID(ctx, companyID, taxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		TaxID:     taxID,
		Active:    true,
		CreatedAt: now,
	}
	applySupplierInput(supplier, in, now)
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor de la empresa.
func (uc *SupplierUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Get devuelve la entidad validando que pertenezca a la empresa (lo usan las compras).
func (uc *SupplierUseCase) Get(ctx context.Context, companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return supplier, nil
}

// Update reemplaza los datos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, companyID, id string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	taxID, err := canonicalTaxID(in.DocumentType, in.DocumentNumber, uc.strictCUIT)
	if err != nil {
		return nil, err
	}
	if taxID != supplier.TaxID {
		other, err := uc.repo.GetByCompanyAndTaxID(ctx, companyID, taxID)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != supplier.ID {
			return nil, domain.ErrDuplicate
		}
	}
	supplier.TaxID = taxID
	applySupplierInput(supplier, in, time.Now())
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor de la empresa.
func (uc *SupplierUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.Get(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List lista proveedores de la empresa.
func (uc *SupplierUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*dto.SupplierResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

func applySupplierInput(s *entity.Supplier, in dto.CreateSupplierRequest, now time.Time) {
	s.Name = strings.TrimSpace(in.Name)
	s.Email = strings.TrimSpace(in.Email)
	s.Phone = strings.TrimSpace(in.Phone)
	s.Address = strings.TrimSpace(in.Address)
	s.ContactName = strings.TrimSpace(in.ContactName)
	s.PaymentTerms = strings.TrimSpace(in.PaymentTerms)
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = now
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	docType, docNumber := decodeTaxID(s.TaxID)
	return &dto.SupplierResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		Name:           s.Name,
		DocumentType:   docType,
		DocumentNumber: docNumber,
		TaxID:          s.TaxID,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		ContactName:    s.ContactName,
		PaymentTerms:   s.PaymentTerms,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
