package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/application/forms"
	"github.com/elpepe-gamestop/storefront/internal/domain"
)

// responderError mapea la taxonomía de errores a respuestas HTTP:
//   - forms.ErroresCampo → 400 con el mapa campo → mensaje
//   - domain.ErrorRemoto → el status del backend y su mensaje legible
//   - domain.ErrNotFound → 404
//   - resto → 502 (el backend es el único colaborador que puede fallar)
func responderError(c *fiber.Ctx, err error) error {
	var campos forms.ErroresCampo
	if errors.As(err, &campos) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroresFormularioResponse{
			Code:    "VALIDATION",
			Message: "Por favor, corrige los errores en el formulario.",
			Campos:  campos,
		})
	}
	var remoto *domain.ErrorRemoto
	if errors.As(err, &remoto) {
		return c.Status(remoto.Status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: remoto.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "no se pudo contactar al backend"})
}
