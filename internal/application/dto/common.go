package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP. Toda falla usa el mismo sobre:
// {"success": false, "error": "<mensaje>"}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail arma el sobre de error estándar.
func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// SuccessResponse cuerpo para operaciones sin payload (eliminar, logout).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Optional distingue en payloads PATCH entre clave ausente, null explícito y
// valor: solo los campos presentes en el payload se aplican a la entidad, y
// null limpia los campos anulables.
type Optional[T any] struct {
	Set   bool // la clave vino en el payload
	Valid bool // el valor no era null
	Value T
}

// UnmarshalJSON solo se invoca cuando la clave está presente.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr devuelve el valor como puntero (nil si fue null).
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
