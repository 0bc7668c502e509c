package entity

import "encoding/json"

// Credenciales es lo que el storefront guarda por sesión tras signup/login:
// el token tal como lo emitió el backend (opaco, nunca se valida aquí) y el
// objeto usuario serializado completo, bajo las claves authToken / user.
type Credenciales struct {
	AuthToken string          `json:"authToken"`
	Usuario   json.RawMessage `json:"user"`
}

// Vacias indica si no hay sesión iniciada.
func (c Credenciales) Vacias() bool {
	return c.AuthToken == ""
}
