package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseSelect = `
	SELECT id, company_id, supplier_id, invoice_number, invoice_date,
	       gross_subtotal, bonification_total, net_subtotal, vat_total, internal_tax_total, grand_total,
	       created_by, created_at
	FROM purchases`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste cabecera y líneas. Debe llamarse dentro de una transacción
// (TxRunner) para que cabecera y detalle queden consistentes.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase, items []*entity.PurchaseItem) error {
	query := `
		INSERT INTO purchases (id, company_id, supplier_id, invoice_number, invoice_date,
			gross_subtotal, bonification_total, net_subtotal, vat_total, internal_tax_total, grand_total,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.SupplierID, p.InvoiceNumber, p.Date,
		p.GrossSubtotal, p.BonificationTotal, p.NetSubtotal, p.VATTotal, p.InternalTaxTotal, p.GrandTotal,
		p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO purchase_items (id, purchase_id, product_id, quantity, unit_net_cost,
				bonification_percent, internal_tax_percent, vat_percent,
				net_amount, vat_amount, internal_tax_amount, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			it.ID, p.ID, it.ProductID, it.Quantity, it.UnitNetCost,
			it.BonificationPercent, it.InternalTaxPercent, it.VATPercent,
			it.NetAmount, it.VATAmount, it.InternalTaxAmount, it.Total,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una factura de compra.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	return r.getOne(ctx, purchaseSelect+` WHERE id = $1`, id)
}

// GetBySupplierAndNumber busca una factura por proveedor y número (detecta cargas duplicadas).
func (r *PurchaseRepo) GetBySupplierAndNumber(ctx context.Context, supplierID, invoiceNumber string) (*entity.Purchase, error) {
	return r.getOne(ctx, purchaseSelect+` WHERE supplier_id = $1 AND invoice_number = $2`, supplierID, invoiceNumber)
}

// GetItems devuelve las líneas de la factura en orden de carga.
func (r *PurchaseRepo) GetItems(ctx context.Context, purchaseID string) ([]*entity.PurchaseItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, purchase_id, product_id, quantity, unit_net_cost, bonification_percent,
		       internal_tax_percent, vat_percent, net_amount, vat_amount, internal_tax_amount, total
		FROM purchase_items WHERE purchase_id = $1 ORDER BY line_no`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitNetCost,
			&it.BonificationPercent, &it.InternalTaxPercent, &it.VATPercent,
			&it.NetAmount, &it.VATAmount, &it.InternalTaxAmount, &it.Total); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByCompany lista facturas de la empresa, las más recientes primero.
func (r *PurchaseRepo) ListByCompany(ctx context.Context, companyID, supplierID string, limit, offset int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, purchaseSelect+`
		WHERE company_id = $1 AND ($2 = '' OR supplier_id::text = $2)
		ORDER BY invoice_date DESC, created_at DESC LIMIT $3 OFFSET $4`,
		companyID, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PurchaseRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Purchase, error) {
	p, err := scanPurchase(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(&p.ID, &p.CompanyID, &p.SupplierID, &p.InvoiceNumber, &p.Date,
		&p.GrossSubtotal, &p.BonificationTotal, &p.NetSubtotal, &p.VATTotal, &p.InternalTaxTotal, &p.GrandTotal,
		&p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
