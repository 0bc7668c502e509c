package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/application/forms"
	"github.com/elpepe-gamestop/storefront/pkg/logger"
)

// ContactoHandler recibe el formulario de contacto. No hay backend de
// contacto: el mensaje validado se registra en el log y se confirma.
type ContactoHandler struct {
	log *logger.Logger
}

// NewContactoHandler construye el handler.
func NewContactoHandler(log *logger.Logger) *ContactoHandler {
	return &ContactoHandler{log: log}
}

// Enviar godoc
// @Summary      Enviar formulario de contacto
// @Tags         contacto
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactoRequest  true  "nombre, email, mensaje"
// @Success      200   {object}  dto.ContactoResponse
// @Failure      400   {object}  dto.ErroresFormularioResponse
// @Router       /api/contacto [post]
func (h *ContactoHandler) Enviar(c *fiber.Ctx) error {
	var in dto.ContactoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := forms.ValidarContacto(in); errs != nil {
		return responderError(c, errs)
	}
	h.log.Info().
		Str("nombre", in.Nombre).
		Str("email", in.Email).
		Int("largo_mensaje", len(in.Mensaje)).
		Msg("mensaje de contacto recibido")
	return c.JSON(dto.ContactoResponse{
		Status:  "ok",
		Message: "¡Mensaje enviado con éxito! Nos pondremos en contacto contigo pronto.",
	})
}
