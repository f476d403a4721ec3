// Package afip agrupa las reglas de identificadores tributarios argentinos
// (CUIT y DNI) que usan los formularios y la capa de persistencia.
//
// La columna tax_id guarda siempre el formato NN-XXXXXXXX-N. Un DNI se
// guarda con prefijo "00" y sufijo "0" (00-XXXXXXXX-0), combinación que no
// corresponde a ningún CUIT real y funciona como marca de tipo. Ese formato
// ya existe en datos persistidos: no cambiar el ancho (8) ni los centinelas.
package afip

import (
	"regexp"
	"strings"
)

// DocumentType tipo de documento del cliente o proveedor.
type DocumentType string

const (
	DocumentCUIT DocumentType = "CUIT"
	DocumentDNI  DocumentType = "DNI"
)

const (
	cuitDigits = 11
	dniDigits  = 8
)

var dniStoragePattern = regexp.MustCompile(`^00-(\d{8})-0$`)

// ParseDocumentType interpreta "CUIT"/"DNI" sin distinguir mayúsculas.
// Cualquier otro valor devuelve ok=false.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(DocumentCUIT):
		return DocumentCUIT, true
	case string(DocumentDNI):
		return DocumentDNI, true
	default:
		return "", false
	}
}

// FormatCUITInput aplica la máscara de tipeo 2-8-1 ("20-12345678-9").
// Descarta todo lo que no sea dígito y trunca a 11 dígitos.
func FormatCUITInput(raw string) string {
	d := extractDigits(raw, cuitDigits)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 10:
		return d[:2] + "-" + d[2:]
	default:
		return d[:2] + "-" + d[2:10] + "-" + d[10:]
	}
}

// FormatDNIInput deja solo dígitos, como máximo 8, sin separadores.
func FormatDNIInput(raw string) string {
	return extractDigits(raw, dniDigits)
}

// DNIToStorageFormat convierte un DNI al formato de la columna tax_id: 00-XXXXXXXX-0.
func DNIToStorageFormat(dni string) string {
	d := FormatDNIInput(dni)
	return "00-" + strings.Repeat("0", dniDigits-len(d)) + d + "-0"
}

// ExtractDNIFromStorage devuelve el DNI sin ceros a la izquierda si code
// tiene la forma 00-XXXXXXXX-0 ("0" si son todos ceros). Cualquier otro
// valor se devuelve sin tocar; una columna NULL llega como "".
func ExtractDNIFromStorage(code string) string {
	m := dniStoragePattern.FindStringSubmatch(code)
	if m == nil {
		return code
	}
	dni := strings.TrimLeft(m[1], "0")
	if dni == "" {
		return "0"
	}
	return dni
}

// DetectDocumentType devuelve DNI solo si code tiene la forma 00-XXXXXXXX-0.
// CUIT es el tipo por defecto, incluso para valores vacíos.
func DetectDocumentType(code string) DocumentType {
	if dniStoragePattern.MatchString(code) {
		return DocumentDNI
	}
	return DocumentCUIT
}

// Normalize produce la representación de almacenamiento según el tipo declarado.
func Normalize(t DocumentType, raw string) string {
	if t == DocumentDNI {
		return DNIToStorageFormat(raw)
	}
	return FormatCUITInput(raw)
}

// Decode es la inversa de Normalize: recupera tipo y número para mostrar.
func Decode(code string) (DocumentType, string) {
	t := DetectDocumentType(code)
	if t == DocumentDNI {
		return t, ExtractDNIFromStorage(code)
	}
	return t, code
}

// ValidateCUIT indica si, quitando guiones, quedan exactamente 11 dígitos.
func ValidateCUIT(value string) bool {
	s := strings.ReplaceAll(value, "-", "")
	if len(s) != cuitDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ValidateDNI indica si, quitando todo lo que no es dígito, quedan 7 u 8 dígitos.
func ValidateDNI(value string) bool {
	n := len(extractDigits(value, -1))
	return n == 7 || n == 8
}

// Validate aplica el validador que corresponde al tipo. Un CUIT con la
// forma 00-XXXXXXXX-0 se rechaza: guardado se leería como DNI.
func Validate(t DocumentType, value string) bool {
	if t == DocumentDNI {
		return ValidateDNI(value)
	}
	return ValidateCUIT(value) && !dniStoragePattern.MatchString(FormatCUITInput(value))
}

// extractDigits conserva los dígitos ASCII de s; max < 0 no trunca.
func extractDigits(s string, max int) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if max >= 0 && b.Len() == max {
			break
		}
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
