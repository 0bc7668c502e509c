package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/auth"
	"github.com/elpepe-gamestop/storefront/internal/application/dto"
)

// UsuariosHandler maneja registro, login y logout contra el backend de
// usuarios. El token resultante es opaco: se guarda en la sesión y se
// devuelve; nunca se valida aquí.
type UsuariosHandler struct {
	uc *auth.AuthUseCase
}

// NewUsuariosHandler construye el handler.
func NewUsuariosHandler(uc *auth.AuthUseCase) *UsuariosHandler {
	return &UsuariosHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "formulario de registro"
// @Success      201   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErroresFormularioResponse
// @Router       /api/usuarios/signup [post]
func (h *UsuariosHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Signup(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/usuarios/login [post]
func (h *UsuariosHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (borra authToken y user de la sesión)
// @Tags         usuarios
// @Produce      json
// @Success      204
// @Router       /api/usuarios/logout [post]
func (h *UsuariosHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetSessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Actual godoc
// @Summary      Estado de autenticación de la sesión
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.UsuarioActualResponse
// @Router       /api/usuarios/me [get]
func (h *UsuariosHandler) Actual(c *fiber.Ctx) error {
	return c.JSON(h.uc.Actual(GetSessionID(c)))
}
