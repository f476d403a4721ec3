package purchasing

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// PDFUseCase genera el comprobante PDF de una factura de compra registrada.
type PDFUseCase struct {
	purchaseRepo repository.PurchaseRepository
	companyRepo  repository.CompanyRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	generator    PDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	purchaseRepo repository.PurchaseRepository,
	companyRepo repository.CompanyRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		purchaseRepo: purchaseRepo,
		companyRepo:  companyRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadPDF arma el documento y devuelve los bytes del PDF y un nombre de archivo.
// ErrNotFound si la compra no existe; ErrForbidden si es de otra empresa.
func (uc *PDFUseCase) DownloadPDF(ctx context.Context, companyID, purchaseID string) ([]byte, string, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener compra: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, p.SupplierID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener proveedor: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.purchaseRepo.GetItems(ctx, p.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	lines := make([]PurchaseLineForPDF, 0, len(items))
	for _, it := range items {
		line := PurchaseLineForPDF{PurchaseItem: *it, ProductName: "Producto " + it.ProductID}
		if product, pErr := uc.productRepo.GetByID(ctx, it.ProductID); pErr == nil && product != nil {
			line.ProductCode = product.Code
			line.ProductName = product.Name
		}
		lines = append(lines, line)
	}

	pdfBytes, err := uc.generator.GeneratePurchasePDF(ctx, PurchaseDocument{
		Purchase: p,
		Company:  company,
		Supplier: supplier,
		Lines:    lines,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("compra_%s.pdf", unsafeFilename.ReplaceAllString(p.InvoiceNumber, "_")), nil
}
