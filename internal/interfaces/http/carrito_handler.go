package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/application/usecase"
	"github.com/elpepe-gamestop/storefront/internal/domain/cart"
)

// CarritoHandler maneja el carrito de la sesión. Las operaciones del carrito
// nunca fallan (IDs ausentes son no-ops), así que fuera de un cuerpo
// malformado aquí siempre se responde 200 con el estado resultante.
type CarritoHandler struct {
	uc *usecase.CarritoUseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *usecase.CarritoUseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Ver godoc
// @Summary      Estado del carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	return c.JSON(h.uc.Ver(GetSessionID(c)))
}

// Agregar godoc
// @Summary      Agregar producto al carrito
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  cart.Entrada  true  "producto (campos en español o inglés)"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in cart.Entrada
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
	}
	return c.JSON(h.uc.Agregar(GetSessionID(c), in))
}

// FijarCantidad godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la elimina)
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.FijarCantidadRequest  true  "cantidad"
// @Success      200   {object}  dto.CarritoResponse
// @Router       /api/carrito/items/{id} [put]
func (h *CarritoHandler) FijarCantidad(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.FijarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.FijarCantidad(GetSessionID(c), id, in.Cantidad))
}

// Quitar godoc
// @Summary      Quitar una línea del carrito (no-op si no existe)
// @Tags         carrito
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito/items/{id} [delete]
func (h *CarritoHandler) Quitar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	return c.JSON(h.uc.Quitar(GetSessionID(c), id))
}

// Vaciar godoc
// @Summary      Vaciar el carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	return c.JSON(h.uc.Vaciar(GetSessionID(c)))
}

// Visibilidad godoc
// @Summary      Alternar (o fijar) la visibilidad del panel del carrito
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VisibilidadRequest  false  "visible explícito; sin cuerpo alterna"
// @Success      200   {object}  dto.CarritoResponse
// @Router       /api/carrito/visibilidad [post]
func (h *CarritoHandler) Visibilidad(c *fiber.Ctx) error {
	var in dto.VisibilidadRequest
	// Cuerpo vacío es válido: alterna la bandera.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	return c.JSON(h.uc.Visibilidad(GetSessionID(c), in.Visible))
}
