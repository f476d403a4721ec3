package afip

import "fmt"

// pesos del dígito verificador del CUIT (módulo 11, AFIP), sobre los 10 primeros dígitos.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ComputeCUITCheckDigit calcula el dígito verificador para los 10 primeros dígitos.
// Un resto que da 10 no tiene dígito válido: AFIP reasigna el prefijo (23/33).
func ComputeCUITCheckDigit(cuit string) (byte, error) {
	digits := extractDigits(cuit, -1)
	if len(digits) < 10 {
		return 0, fmt.Errorf("afip: se requieren al menos 10 dígitos para calcular el verificador, se encontraron %d", len(digits))
	}
	var sum int
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * cuitWeights[i]
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return '0', nil
	case 10:
		return 0, fmt.Errorf("afip: el prefijo %s no admite dígito verificador para este número", digits[:2])
	default:
		return byte('0' + check), nil
	}
}

// CUITCheckDigitValid verifica formato (11 dígitos) y dígito verificador.
// Los formularios usan ValidateCUIT; esta comprobación es la versión estricta.
func CUITCheckDigitValid(cuit string) bool {
	if !ValidateCUIT(cuit) {
		return false
	}
	digits := extractDigits(cuit, -1)
	expected, err := ComputeCUITCheckDigit(digits)
	if err != nil {
		return false
	}
	return digits[10] == expected
}

// Check es Validate con la opción de exigir el dígito verificador a los CUIT
// (TAX_STRICT_CUIT). Los DNI no tienen verificador.
func Check(t DocumentType, value string, strictCUIT bool) bool {
	if !Validate(t, value) {
		return false
	}
	if t == DocumentCUIT && strictCUIT {
		return CUITCheckDigitValid(value)
	}
	return true
}
