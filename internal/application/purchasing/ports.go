package purchasing

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.InventoryMovementRepository,
	) error) error
}

// PurchaseDocument datos que necesita el comprobante PDF de una compra.
type PurchaseDocument struct {
	Purchase *entity.Purchase
	Company  *entity.Company
	Supplier *entity.Supplier
	Lines    []PurchaseLineForPDF
}

// PurchaseLineForPDF línea de la compra con los datos del producto.
type PurchaseLineForPDF struct {
	entity.PurchaseItem
	ProductCode string
	ProductName string
}

// PDFGenerator genera el comprobante PDF de una factura de compra.
type PDFGenerator interface {
	GeneratePurchasePDF(ctx context.Context, doc PurchaseDocument) ([]byte, error)
}
