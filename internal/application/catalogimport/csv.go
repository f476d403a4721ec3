package catalogimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/distribuidora-api/internal/domain/catalog"
)

// ErrEmptyFile el archivo no tiene filas de datos.
var ErrEmptyFile = errors.New("la lista de precios está vacía")

// ErrInvalidFile el archivo no se pudo leer como CSV.
var ErrInvalidFile = errors.New("la lista de precios no es un CSV válido")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Columnas reconocidas en el encabezado (ya normalizadas con catalog.NormalizeName).
var headerAliases = map[string]string{
	"codigo":          "code",
	"cod":             "code",
	"cod.":            "code",
	"code":            "code",
	"sku":             "code",
	"articulo":        "code",
	"nombre":          "name",
	"descripcion":     "name",
	"producto":        "name",
	"name":            "name",
	"costo":           "cost",
	"precio costo":    "cost",
	"precio de costo": "cost",
	"costo neto":      "cost",
	"cost":            "cost",
	"precio":          "price",
	"precio venta":    "price",
	"precio de venta": "price",
	"pvp":             "price",
	"price":           "price",
}

// ParseCSV lee una lista de precios exportada desde una planilla.
//
// Acepta UTF-8 (con o sin BOM) o Windows-1252/Latin-1, que es lo que suele
// exportar Excel en español. El separador es ';' o ',' según cuál aparezca
// más en la primera línea. Si la primera línea no es un encabezado conocido,
// las columnas se toman en orden: código, nombre, costo, precio.
func ParseCSV(r io.Reader) ([]catalog.ImportRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: leer archivo: %v", ErrInvalidFile, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = detectDelimiter(raw)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	cols, isHeader := mapHeader(records[0])
	start := 0
	if isHeader {
		start = 1
	}
	var rows []catalog.ImportRow
	for i := start; i < len(records); i++ {
		rec := records[i]
		if blank(rec) {
			continue
		}
		rows = append(rows, catalog.ImportRow{
			Line:  i + 1,
			Code:  field(rec, cols["code"]),
			Name:  field(rec, cols["name"]),
			Cost:  field(rec, cols["cost"]),
			Price: field(rec, cols["price"]),
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func detectDelimiter(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}) {
		return ';'
	}
	return ','
}

// mapHeader devuelve el índice de cada columna. Sin nombre ni costo reconocidos
// la línea se trata como datos y se usa el orden posicional.
func mapHeader(rec []string) (map[string]int, bool) {
	cols := map[string]int{"code": -1, "name": -1, "cost": -1, "price": -1}
	for i, h := range rec {
		key, ok := headerAliases[catalog.NormalizeName(h)]
		if ok && cols[key] < 0 {
			cols[key] = i
		}
	}
	if cols["name"] >= 0 && cols["cost"] >= 0 {
		return cols, true
	}
	return map[string]int{"code": 0, "name": 1, "cost": 2, "price": 3}, false
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
