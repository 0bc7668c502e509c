package auth

import (
	"context"
	"strings"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/application/forms"
	"github.com/elpepe-gamestop/storefront/internal/domain"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación del storefront: valida los
// formularios, reenvía signup/login al backend y guarda el token opaco más
// el usuario serializado en la sesión (claves authToken / user). El token
// nunca se valida aquí; solo se almacena y reenvía.
type AuthUseCase struct {
	usuarios repository.UsuariosAPI
	sesiones repository.Sesiones
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios repository.UsuariosAPI, sesiones repository.Sesiones) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, sesiones: sesiones}
}

// Signup valida el formulario de registro y registra al usuario en el
// backend. Los errores de validación vuelven como forms.ErroresCampo; los del
// backend como domain.ErrorRemoto con mensaje legible.
func (uc *AuthUseCase) Signup(ctx context.Context, sessionID string, in dto.SignupRequest) (*dto.SesionResponse, error) {
	if errs := forms.ValidarRegistro(in); errs != nil {
		return nil, errs
	}
	// El backend recibe un solo campo name.
	nombre := strings.TrimSpace(in.Nombre + " " + in.Apellido)
	creds, err := uc.usuarios.Signup(ctx, repository.DatosSignup{
		Name:     nombre,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	uc.sesiones.GuardarCredenciales(sessionID, *creds)
	return &dto.SesionResponse{AuthToken: creds.AuthToken, Usuario: creds.Usuario}, nil
}

// Login valida las credenciales contra el backend y abre la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, sessionID string, in dto.LoginRequest) (*dto.SesionResponse, error) {
	if errs := forms.ValidarLogin(in); errs != nil {
		return nil, errs
	}
	creds, err := uc.usuarios.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	uc.sesiones.GuardarCredenciales(sessionID, *creds)
	return &dto.SesionResponse{AuthToken: creds.AuthToken, Usuario: creds.Usuario}, nil
}

// Logout borra authToken y user de la sesión. Idempotente.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sesiones.CerrarSesion(sessionID)
}

// Actual devuelve el estado de autenticación de la sesión.
func (uc *AuthUseCase) Actual(sessionID string) *dto.UsuarioActualResponse {
	creds, ok := uc.sesiones.Credenciales(sessionID)
	if !ok || creds.Vacias() {
		return &dto.UsuarioActualResponse{Autenticado: false}
	}
	return &dto.UsuarioActualResponse{Autenticado: true, Usuario: creds.Usuario}
}

// Token devuelve el token opaco de la sesión, o ErrNoSession si no hay.
func (uc *AuthUseCase) Token(sessionID string) (string, error) {
	creds, ok := uc.sesiones.Credenciales(sessionID)
	if !ok || creds.Vacias() {
		return "", domain.ErrNoSession
	}
	return creds.AuthToken, nil
}
