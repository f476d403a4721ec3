// Package numparse interpreta montos tal como los escribe el usuario o llegan
// en planillas de proveedores: "$ 1.234,50", "1,234.50", "21%", "  15 ".
package numparse

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Prefijos y sufijos de moneda que se aceptan junto al número.
var currencyTokens = []string{"U$S", "US$", "ARS", "USD", "$", "€"}

// ParseDecimal convierte raw a decimal.
//
// Se descartan espacios, un símbolo o código de moneda al principio o al
// final ("$", "ARS", "U$S") y un "%" final. Si aparecen "," y "." el que
// aparece último es el separador decimal y el otro es de miles. Si un mismo
// separador aparece más de una vez es de miles ("1.234.567").
// Devuelve ok=false cuando no queda un número interpretable: letras mezcladas
// con los dígitos ("abc12") o un "-" que no va adelante ("1-2").
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	}
	s = strings.TrimSuffix(stripCurrency(s), "%")
	s = stripCurrency(s)
	if !neg && strings.HasPrefix(s, "-") {
		neg, s = true, strings.TrimSpace(s[1:])
	}

	var b strings.Builder
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == ',', r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
		default:
			return decimal.Zero, false
		}
	}
	if digits == 0 {
		return decimal.Zero, false
	}
	s = b.String()

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// stripCurrency quita un token de moneda al principio o al final y los espacios sobrantes.
func stripCurrency(s string) string {
	s = strings.TrimSpace(s)
	for _, t := range currencyTokens {
		if len(s) >= len(t) && strings.EqualFold(s[:len(t)], t) {
			return strings.TrimSpace(s[len(t):])
		}
		if len(s) >= len(t) && strings.EqualFold(s[len(s)-len(t):], t) {
			return strings.TrimSpace(s[:len(s)-len(t)])
		}
	}
	return s
}

// DecimalOr devuelve el valor interpretado o def si raw no es un número.
func DecimalOr(raw string, def decimal.Decimal) decimal.Decimal {
	if d, ok := ParseDecimal(raw); ok {
		return d
	}
	return def
}
