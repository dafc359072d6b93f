package dto

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// InputText texto crudo de un campo de formulario.
// En JSON acepta un string o un número y conserva el texto tal cual; el parseo lo hace el caso de uso.
type InputText string

// UnmarshalJSON implementa json.Unmarshaler.
func (t *InputText) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = InputText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("se esperaba texto o número: %w", err)
	}
	*t = InputText(n.String())
	return nil
}
