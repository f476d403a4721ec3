package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// Alícuotas de IVA vigentes.
var vatRates = []decimal.Decimal{
	decimal.Zero,
	decimal.RequireFromString("2.5"),
	decimal.NewFromInt(5),
	decimal.RequireFromString("10.5"),
	decimal.NewFromInt(21),
	decimal.NewFromInt(27),
}

func validVAT(v decimal.Decimal) bool {
	for _, r := range vatRates {
		if r.Equal(v) {
			return true
		}
	}
	return false
}

// ProductUseCase casos de uso CRUD para productos. Stock y costo promedio cambian con las compras.
type ProductUseCase struct {
	repo       repository.ProductRepository
	defaultVAT decimal.Decimal
}

// NewProductUseCase construye el caso de uso. defaultVAT se aplica si el alta no trae alícuota.
func NewProductUseCase(repo repository.ProductRepository, defaultVAT decimal.Decimal) *ProductUseCase {
	return &ProductUseCase{repo: repo, defaultVAT: defaultVAT}
}

// Create crea un nuevo producto con stock 0. El costo inicial es el informado.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" || in.Cost.IsNegative() || in.Price.IsNegative() || in.InternalTaxPercent.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	vat := uc.defaultVAT
	if in.VATPercent != nil {
		vat = *in.VATPercent
	}
	if !validVAT(vat) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Code:               code,
		Name:               name,
		Cost:               in.Cost,
		Price:              in.Price,
		Stock:              decimal.Zero,
		VATPercent:         vat,
		InternalTaxPercent: in.InternalTaxPercent,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Cost ni Stock.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.VATPercent != nil {
		if !validVAT(*in.VATPercent) {
			return nil, domain.ErrInvalidInput
		}
		product.VATPercent = *in.VATPercent
	}
	if in.InternalTaxPercent != nil {
		if in.InternalTaxPercent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.InternalTaxPercent = *in.InternalTaxPercent
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *ProductUseCase) get(ctx context.Context, companyID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		Code:               p.Code,
		Name:               p.Name,
		Cost:               p.Cost,
		Price:              p.Price,
		Stock:              p.Stock,
		VATPercent:         p.VATPercent,
		InternalTaxPercent: p.InternalTaxPercent,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
