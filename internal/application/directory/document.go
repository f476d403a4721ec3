// Package directory casos de uso de clientes y proveedores (altas, ediciones y
// consultas) con la identificación CUIT/DNI normalizada.
package directory

import (
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/pkg/afip"
)

// canonicalTaxID valida el documento y devuelve la forma de almacenamiento.
// strictCUIT exige además el dígito verificador.
func canonicalTaxID(docType, number string, strictCUIT bool) (string, error) {
	t, ok := afip.ParseDocumentType(docType)
	if !ok {
		return "", domain.ErrInvalidDocument
	}
	if !afip.Check(t, number, strictCUIT) {
		return "", domain.ErrInvalidDocument
	}
	return afip.Normalize(t, number), nil
}

// decodeTaxID recupera tipo y número para mostrar desde la columna tax_id.
func decodeTaxID(taxID string) (string, string) {
	t, display := afip.Decode(taxID)
	return string(t), display
}
