package repository

import (
	"context"

	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
)

// DatosSignup cuerpo de POST /api/usuarios/signup.
type DatosSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuariosAPI contrato consumido del backend de usuarios. Las respuestas 2xx
// traen authToken más los campos del usuario; las no-2xx un `message` legible.
type UsuariosAPI interface {
	Signup(ctx context.Context, datos DatosSignup) (*entity.Credenciales, error)
	Login(ctx context.Context, email, password string) (*entity.Credenciales, error)
}
