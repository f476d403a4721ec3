// Package catalog compara una lista de precios de proveedor contra el
// catálogo de productos existente.
package catalog

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/pkg/numparse"
)

// Motivos de filas inválidas.
const (
	ReasonMissingName   = "falta el nombre"
	ReasonInvalidCost   = "costo vacío o no numérico"
	ReasonNegativeValue = "costo o precio negativo"
	ReasonInvalidPrice  = "precio no numérico"
	ReasonDuplicateRow  = "fila repetida en el archivo (se usa la última)"
)

// ImportRow fila de la planilla del proveedor, con los montos aún en texto.
// Line es el número de fila en el archivo (para reportar errores).
type ImportRow struct {
	Line  int
	Code  string
	Name  string
	Cost  string
	Price string
}

// Change fila válida ya interpretada. Existing es nil para productos nuevos.
// HasPrice indica si la fila trae precio de venta; si no, se conserva el actual.
type Change struct {
	Line              int
	Code              string
	Name              string
	Cost              decimal.Decimal
	Price             decimal.Decimal
	HasPrice          bool
	Existing          *entity.Product
	CostChangePercent decimal.Decimal
}

// InvalidRow fila descartada y su motivo.
type InvalidRow struct {
	Line   int
	Code   string
	Name   string
	Reason string
}

// Diff resultado de comparar la planilla con el catálogo.
type Diff struct {
	New       []Change
	Updated   []Change
	Unchanged []Change
	Invalid   []InvalidRow
}

// Compare clasifica cada fila en nueva, actualizada, sin cambios o inválida.
//
// Se busca el producto por código (sin distinguir mayúsculas); si la fila no
// trae código, o el código no existe, por nombre normalizado (sin acentos ni
// espacios repetidos). Si una misma clave aparece varias veces gana la última.
func Compare(existing []*entity.Product, rows []ImportRow) Diff {
	byCode := make(map[string]*entity.Product, len(existing))
	byName := make(map[string]*entity.Product, len(existing))
	for _, p := range existing {
		if k := codeKey(p.Code); k != "" {
			byCode[k] = p
		}
		if k := NormalizeName(p.Name); k != "" {
			byName[k] = p
		}
	}

	last := make(map[string]int, len(rows))
	for i, r := range rows {
		if k := rowKey(r); k != "" {
			last[k] = i
		}
	}

	var diff Diff
	for i, r := range rows {
		if k := rowKey(r); k != "" && last[k] != i {
			diff.Invalid = append(diff.Invalid, invalid(r, ReasonDuplicateRow))
			continue
		}
		ch, reason := parseRow(r)
		if reason != "" {
			diff.Invalid = append(diff.Invalid, invalid(r, reason))
			continue
		}

		var match *entity.Product
		if k := codeKey(ch.Code); k != "" {
			match = byCode[k]
		}
		if match == nil {
			match = byName[NormalizeName(ch.Name)]
		}
		if match == nil {
			diff.New = append(diff.New, ch)
			continue
		}

		ch.Existing = match
		ch.CostChangePercent = percentChange(match.Cost, ch.Cost)
		if changed(match, ch) {
			diff.Updated = append(diff.Updated, ch)
		} else {
			diff.Unchanged = append(diff.Unchanged, ch)
		}
	}
	return diff
}

// NormalizeName clave de comparación por nombre: minúsculas, sin acentos, espacios simples.
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

func parseRow(r ImportRow) (Change, string) {
	ch := Change{
		Line: r.Line,
		Code: strings.TrimSpace(r.Code),
		Name: strings.Join(strings.Fields(r.Name), " "),
	}
	if ch.Name == "" {
		return ch, ReasonMissingName
	}
	cost, ok := numparse.ParseDecimal(r.Cost)
	if !ok {
		return ch, ReasonInvalidCost
	}
	ch.Cost = cost
	if strings.TrimSpace(r.Price) != "" {
		price, ok := numparse.ParseDecimal(r.Price)
		if !ok {
			return ch, ReasonInvalidPrice
		}
		ch.Price = price
		ch.HasPrice = true
	}
	if ch.Cost.IsNegative() || ch.Price.IsNegative() {
		return ch, ReasonNegativeValue
	}
	return ch, ""
}

func changed(p *entity.Product, ch Change) bool {
	if !p.Cost.Equal(ch.Cost) {
		return true
	}
	if ch.HasPrice && !p.Price.Equal(ch.Price) {
		return true
	}
	return NormalizeName(p.Name) != NormalizeName(ch.Name)
}

// percentChange variación porcentual de from a to, redondeada a 2 decimales.
func percentChange(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from).Mul(decimal.NewFromInt(100)).Round(2)
}

func codeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func rowKey(r ImportRow) string {
	if k := codeKey(r.Code); k != "" {
		return "c:" + k
	}
	if n := NormalizeName(r.Name); n != "" {
		return "n:" + n
	}
	return ""
}

func invalid(r ImportRow, reason string) InvalidRow {
	return InvalidRow{Line: r.Line, Code: strings.TrimSpace(r.Code), Name: strings.TrimSpace(r.Name), Reason: reason}
}
