package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErroresFormularioResponse errores de validación por campo (nunca excepción).
type ErroresFormularioResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Campos  map[string]string `json:"campos"`
}
