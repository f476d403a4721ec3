package catalogimport

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de productos atado a ella.
type TxRunner interface {
	RunProducts(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
