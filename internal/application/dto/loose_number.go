package dto

import (
	"bytes"
	"encoding/json"
)

// LooseNumber número tal como lo envía un formulario: acepta 12, 12.5, "12,5" o null.
// Se conserva como texto; la interpretación la hace el dominio (numparse).
type LooseNumber string

// UnmarshalJSON acepta número, string o null.
func (n *LooseNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = LooseNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		// true/false u objetos: se tratan como campo vacío, igual que un texto no numérico.
		*n = ""
		return nil
	}
	*n = LooseNumber(num.String())
	return nil
}

// String devuelve el texto original.
func (n LooseNumber) String() string { return string(n) }
