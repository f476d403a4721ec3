// Package catalogimport importa listas de precios de proveedores en dos pasos:
// vista previa del diff contra el catálogo y aplicación en una transacción.
package catalogimport

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/catalog"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// DefaultPreviewTTL tiempo que una vista previa queda disponible para aplicarse.
const DefaultPreviewTTL = 30 * time.Minute

// Config parámetros de la importación.
type Config struct {
	PreviewTTL        time.Duration
	DefaultVATPercent decimal.Decimal // alícuota de los productos nuevos
}

type preview struct {
	companyID string
	diff      catalog.Diff
	expiresAt time.Time
}

// ImportUseCase compara la lista del proveedor contra el catálogo y aplica el resultado.
type ImportUseCase struct {
	productRepo repository.ProductRepository
	txRunner    TxRunner
	previews    *cache.Cache
	claimMu     sync.Mutex
	cfg         Config
	log         *logger.Logger
}

// NewImportUseCase construye el caso de uso. Las vistas previas viven en memoria.
func NewImportUseCase(productRepo repository.ProductRepository, txRunner TxRunner, cfg Config, log *logger.Logger) *ImportUseCase {
	if cfg.PreviewTTL <= 0 {
		cfg.PreviewTTL = DefaultPreviewTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{
		productRepo: productRepo,
		txRunner:    txRunner,
		previews:    cache.New(cfg.PreviewTTL, 2*cfg.PreviewTTL),
		cfg:         cfg,
		log:         log.Component("catalog_import"),
	}
}

// PreviewCSV parsea el archivo y calcula la vista previa.
func (uc *ImportUseCase) PreviewCSV(ctx context.Context, companyID string, r io.Reader) (*dto.CatalogPreviewResponse, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return uc.Preview(ctx, companyID, rows)
}

// PreviewRows calcula la vista previa a partir de filas recibidas como JSON.
func (uc *ImportUseCase) PreviewRows(ctx context.Context, companyID string, in []dto.ImportRowRequest) (*dto.CatalogPreviewResponse, error) {
	rows := make([]catalog.ImportRow, 0, len(in))
	for i, r := range in {
		rows = append(rows, catalog.ImportRow{
			Line:  i + 1,
			Code:  r.Code,
			Name:  r.Name,
			Cost:  string(r.Cost),
			Price: string(r.Price),
		})
	}
	return uc.Preview(ctx, companyID, rows)
}

// Preview compara las filas con el catálogo de la empresa y guarda el diff
// para aplicarlo después con Apply. No modifica la base.
func (uc *ImportUseCase) Preview(ctx context.Context, companyID string, rows []catalog.ImportRow) (*dto.CatalogPreviewResponse, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	existing, err := uc.productRepo.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	diff := catalog.Compare(existing, rows)

	id := uuid.New().String()
	expiresAt := time.Now().Add(uc.cfg.PreviewTTL)
	uc.previews.Set(id, &preview{companyID: companyID, diff: diff, expiresAt: expiresAt}, cache.DefaultExpiration)

	uc.log.Info().
		Str("company_id", companyID).
		Str("preview_id", id).
		Int("new", len(diff.New)).
		Int("updated", len(diff.Updated)).
		Int("unchanged", len(diff.Unchanged)).
		Int("invalid", len(diff.Invalid)).
		Msg("vista previa de importación")

	return toPreviewResponse(id, expiresAt, diff), nil
}

// Apply crea los productos nuevos y actualiza los modificados de una vista
// previa, todo en una transacción. La vista previa se consume antes de abrir
// la transacción: otro Apply con el mismo id, aun concurrente, devuelve
// ErrPreviewExpired. Si la transacción falla la vista previa vuelve a quedar
// disponible hasta su vencimiento original.
func (uc *ImportUseCase) Apply(ctx context.Context, companyID, previewID string) (*dto.CatalogApplyResponse, error) {
	p, err := uc.claim(companyID, previewID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var res dto.CatalogApplyResponse
	err = uc.txRunner.RunProducts(ctx, func(repo repository.ProductRepository) error {
		for _, ch := range p.diff.New {
			if ch.Code != "" {
				dup, err := repo.GetByCompanyAndCode(ctx, companyID, ch.Code)
				if err != nil {
					return err
				}
				if dup != nil {
					return domain.ErrConflict
				}
			}
			prod := &entity.Product{
				ID:         uuid.New().String(),
				CompanyID:  companyID,
				Code:       ch.Code,
				Name:       ch.Name,
				Cost:       ch.Cost,
				Price:      ch.Price,
				Stock:      decimal.Zero,
				VATPercent: uc.cfg.DefaultVATPercent,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := repo.Create(ctx, prod); err != nil {
				return err
			}
			res.Created++
		}
		for _, ch := range p.diff.Updated {
			prod, err := repo.GetForUpdate(ctx, ch.Existing.ID)
			if err != nil {
				return err
			}
			if prod == nil {
				return domain.ErrConflict
			}
			prod.Name = ch.Name
			prod.Cost = ch.Cost
			if ch.HasPrice {
				prod.Price = ch.Price
			}
			if prod.Code == "" && ch.Code != "" {
				prod.Code = ch.Code
			}
			prod.UpdatedAt = now
			if err := repo.Update(ctx, prod); err != nil {
				return err
			}
			res.Updated++
		}
		return nil
	})
	if err != nil {
		uc.release(previewID, p)
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("preview_id", previewID).
		Int("created", res.Created).
		Int("updated", res.Updated).
		Msg("importación aplicada")
	return &res, nil
}

// claim toma la vista previa y la quita del cache en un solo paso.
func (uc *ImportUseCase) claim(companyID, previewID string) (*preview, error) {
	uc.claimMu.Lock()
	defer uc.claimMu.Unlock()
	v, ok := uc.previews.Get(previewID)
	if !ok {
		return nil, domain.ErrPreviewExpired
	}
	p := v.(*preview)
	if p.companyID != companyID {
		return nil, domain.ErrForbidden
	}
	uc.previews.Delete(previewID)
	return p, nil
}

// release devuelve al cache una vista previa cuyo Apply falló.
func (uc *ImportUseCase) release(previewID string, p *preview) {
	ttl := time.Until(p.expiresAt)
	if ttl <= 0 {
		return
	}
	uc.claimMu.Lock()
	defer uc.claimMu.Unlock()
	uc.previews.Set(previewID, p, ttl)
}

func toPreviewResponse(id string, expiresAt time.Time, diff catalog.Diff) *dto.CatalogPreviewResponse {
	resp := &dto.CatalogPreviewResponse{
		PreviewID: id,
		ExpiresAt: expiresAt,
		Summary: dto.ImportSummary{
			New:       len(diff.New),
			Updated:   len(diff.Updated),
			Unchanged: len(diff.Unchanged),
			Invalid:   len(diff.Invalid),
		},
		New:       toChanges(diff.New),
		Updated:   toChanges(diff.Updated),
		Unchanged: toChanges(diff.Unchanged),
		Invalid:   make([]dto.ImportInvalidResponse, 0, len(diff.Invalid)),
	}
	for _, r := range diff.Invalid {
		resp.Invalid = append(resp.Invalid, dto.ImportInvalidResponse{
			Line: r.Line, Code: r.Code, Name: strings.TrimSpace(r.Name), Reason: r.Reason,
		})
	}
	return resp
}

func toChanges(list []catalog.Change) []dto.ImportChangeResponse {
	out := make([]dto.ImportChangeResponse, 0, len(list))
	for _, ch := range list {
		item := dto.ImportChangeResponse{
			Line:              ch.Line,
			Code:              ch.Code,
			Name:              ch.Name,
			NewCost:           ch.Cost,
			CostChangePercent: ch.CostChangePercent,
		}
		if ch.HasPrice {
			price := ch.Price
			item.NewPrice = &price
		}
		if ch.Existing != nil {
			cost, price := ch.Existing.Cost, ch.Existing.Price
			item.ProductID = ch.Existing.ID
			item.CurrentCost = &cost
			item.CurrentPrice = &price
		}
		out = append(out, item)
	}
	return out
}
