package dto

import "encoding/json"

// SignupRequest formulario de registro. El backend recibe {name, email,
// password}; el resto de los campos se valida localmente (las reglas del
// formulario son parte del contrato observable).
type SignupRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"` // opcional
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SesionResponse respuesta tras signup/login: el token opaco y el objeto
// usuario tal como lo serializó el backend.
type SesionResponse struct {
	AuthToken string          `json:"authToken"`
	Usuario   json.RawMessage `json:"user"`
}

// UsuarioActualResponse estado de autenticación de la sesión.
type UsuarioActualResponse struct {
	Autenticado bool            `json:"autenticado"`
	Usuario     json.RawMessage `json:"user,omitempty"`
}

// ContactoRequest formulario de contacto.
type ContactoRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}

// ContactoResponse confirmación de recepción del formulario de contacto.
type ContactoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
