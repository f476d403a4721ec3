package purchasing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/purchase"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// PurchaseUseCase registra facturas de compra. Cada factura se guarda en una
// transacción junto con el ingreso de stock y el nuevo costo promedio de cada producto.
type PurchaseUseCase struct {
	txRunner     TxRunner
	calc         *purchase.Calculator
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	log          *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso. log puede ser nil.
func NewPurchaseUseCase(
	txRunner TxRunner,
	calc *purchase.Calculator,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	log *logger.Logger,
) *PurchaseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PurchaseUseCase{
		txRunner:     txRunner,
		calc:         calc,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		log:          log.Component("purchasing"),
	}
}

// Create valida la factura, calcula totales y la persiste.
//
// A diferencia de PreviewTotals acá la entrada debe ser coherente: cada línea
// necesita producto de la empresa y cantidad positiva, y no puede haber dos
// facturas con el mismo número para el mismo proveedor.
func (uc *PurchaseUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	invoiceNumber := strings.TrimSpace(in.InvoiceNumber)
	if invoiceNumber == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if !supplier.Active {
		return nil, domain.ErrConflict
	}
	dup, err := uc.purchaseRepo.GetBySupplierAndNumber(ctx, supplier.ID, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.ErrDuplicate
	}

	items := toLineItems(in.Items)
	for i, line := range in.Items {
		if strings.TrimSpace(line.ProductID) == "" || !validLine(items[i]) {
			return nil, domain.ErrInvalidInput
		}
	}

	totals := uc.calc.Compute(items)
	now := time.Now()
	p := &entity.Purchase{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SupplierID:        supplier.ID,
		InvoiceNumber:     invoiceNumber,
		Date:              date,
		GrossSubtotal:     totals.GrossSubtotal,
		BonificationTotal: totals.BonificationTotal,
		NetSubtotal:       totals.NetSubtotal,
		VATTotal:          totals.VATTotal,
		InternalTaxTotal:  totals.InternalTaxTotal,
		GrandTotal:        totals.GrandTotal,
		CreatedBy:         userID,
		CreatedAt:         now,
	}
	rows := make([]*entity.PurchaseItem, 0, len(items))
	for i, item := range items {
		l := uc.calc.Line(item)
		rows = append(rows, &entity.PurchaseItem{
			ID:                  uuid.New().String(),
			PurchaseID:          p.ID,
			ProductID:           strings.TrimSpace(in.Items[i].ProductID),
			Quantity:            item.Quantity,
			UnitNetCost:         item.UnitNetCost,
			BonificationPercent: item.BonificationPercent,
			InternalTaxPercent:  item.InternalTaxPercent,
			VATPercent:          l.VATPercent,
			NetAmount:           l.Net,
			VATAmount:           l.VAT,
			InternalTaxAmount:   l.InternalTax,
			Total:               l.Total,
		})
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.InventoryMovementRepository,
	) error {
		if err := purchaseRepo.Create(ctx, p, rows); err != nil {
			return err
		}
		for _, row := range rows {
			m, err := receiveStock(ctx, productRepo, p, row)
			if err != nil {
				return err
			}
			if err := movementRepo.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", p.ID).
		Str("company_id", companyID).
		Str("supplier_id", supplier.ID).
		Str("invoice_number", invoiceNumber).
		Int("items", len(rows)).
		Str("grand_total", p.GrandTotal.StringFixed(2)).
		Msg("factura de compra registrada")

	resp := toPurchaseResponse(p, rows)
	resp.SupplierName = supplier.Name
	return resp, nil
}

var (
	hundred    = decimal.NewFromInt(100)
	maxRatePct = decimal.NewFromInt(1000)
)

// validLine reglas de una línea que se va a registrar: cantidad positiva,
// costo no negativo, bonificación entre 0 y 100 y alícuotas no negativas
// (y menores a 1000, el máximo de la columna).
func validLine(item purchase.LineItem) bool {
	if !item.Quantity.IsPositive() || item.UnitNetCost.IsNegative() {
		return false
	}
	if item.BonificationPercent.IsNegative() || item.BonificationPercent.GreaterThan(hundred) {
		return false
	}
	if !validRate(item.InternalTaxPercent) {
		return false
	}
	return item.VATPercent == nil || validRate(*item.VATPercent)
}

func validRate(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThan(maxRatePct)
}

// receiveStock suma la cantidad al stock y recalcula el costo promedio con el
// costo neto de bonificación (el IVA es crédito fiscal, no integra el costo).
// Devuelve el movimiento IN a registrar.
func receiveStock(ctx context.Context, repo repository.ProductRepository, p *entity.Purchase, row *entity.PurchaseItem) (*entity.InventoryMovement, error) {
	product, err := repo.GetForUpdate(ctx, row.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != p.CompanyID {
		return nil, domain.ErrForbidden
	}
	unitCost := row.NetAmount.Div(row.Quantity)
	newStock := product.Stock.Add(row.Quantity)
	newCost := inventory.WeightedAverageCost(product.Stock, product.Cost, row.Quantity, unitCost).Round(4)
	if err := repo.UpdateStockAndCost(ctx, product.ID, newStock, newCost); err != nil {
		return nil, err
	}
	return &entity.InventoryMovement{
		ID:         uuid.New().String(),
		CompanyID:  p.CompanyID,
		ProductID:  product.ID,
		Type:       entity.MovementTypeIN,
		Quantity:   row.Quantity,
		UnitCost:   unitCost.Round(4),
		TotalCost:  row.NetAmount,
		StockAfter: newStock,
		CostAfter:  newCost,
		Reference:  p.ID,
		Date:       p.Date,
		CreatedAt:  p.CreatedAt,
		CreatedBy:  p.CreatedBy,
	}, nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.purchaseRepo.GetItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseResponse(p, items)
	if s, err := uc.supplierRepo.GetByID(ctx, p.SupplierID); err == nil && s != nil {
		resp.SupplierName = s.Name
	}
	return resp, nil
}

// List lista facturas de la empresa (sin líneas), opcionalmente de un proveedor.
func (uc *PurchaseUseCase) List(ctx context.Context, companyID, supplierID string, limit, offset int) ([]*dto.PurchaseResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.purchaseRepo.ListByCompany(ctx, companyID, strings.TrimSpace(supplierID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p, nil))
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		SupplierID:    p.SupplierID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date.Format(dateLayout),
		Totals: dto.InvoiceTotalsResponse{
			GrossSubtotal:     p.GrossSubtotal,
			BonificationTotal: p.BonificationTotal,
			NetSubtotal:       p.NetSubtotal,
			VATTotal:          p.VATTotal,
			InternalTaxTotal:  p.InternalTaxTotal,
			GrandTotal:        p.GrandTotal,
		},
		CreatedAt: p.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:                  it.ID,
			ProductID:           it.ProductID,
			Quantity:            it.Quantity,
			UnitNetCost:         it.UnitNetCost,
			BonificationPercent: it.BonificationPercent,
			InternalTaxPercent:  it.InternalTaxPercent,
			VATPercent:          it.VATPercent,
			NetAmount:           it.NetAmount,
			VATAmount:           it.VATAmount,
			InternalTaxAmount:   it.InternalTaxAmount,
			Total:               it.Total,
		})
	}
	return resp
}
