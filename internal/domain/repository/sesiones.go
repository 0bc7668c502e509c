package repository

import (
	"github.com/elpepe-gamestop/storefront/internal/domain/cart"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
)

// Sesiones es el análogo del local storage del navegador: estado confinado a
// una sesión (carrito + claves authToken/user), sin persistencia durable ni
// sincronización entre sesiones.
type Sesiones interface {
	// Carrito devuelve el carrito de la sesión, creándolo vacío si no existe.
	Carrito(sessionID string) *cart.Store
	// GuardarCredenciales persiste authToken y usuario serializado en la sesión.
	GuardarCredenciales(sessionID string, c entity.Credenciales)
	// Credenciales devuelve lo guardado; ok=false si no hay sesión iniciada.
	Credenciales(sessionID string) (entity.Credenciales, bool)
	// CerrarSesion borra ambas claves (logout). El carrito no se toca.
	CerrarSesion(sessionID string)
}
