package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrNoSession    = errors.New("sesión no iniciada")
)

// ErrorRemoto representa una respuesta no-2xx del backend de catálogo/usuarios.
// Mensaje viene del campo `message` del cuerpo JSON y es apto para mostrar al usuario.
// No hay reintento automático: el error se propaga tal cual hasta la capa HTTP.
type ErrorRemoto struct {
	Status  int
	Mensaje string
}

func (e *ErrorRemoto) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return fmt.Sprintf("el backend respondió %d", e.Status)
}

// Unwrap mapea 404 a ErrNotFound y 401 a ErrUnauthorized para errors.Is.
func (e *ErrorRemoto) Unwrap() error {
	switch e.Status {
	case 404:
		return ErrNotFound
	case 401:
		return ErrUnauthorized
	}
	return nil
}
