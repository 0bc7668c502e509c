package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/application/usecase"
)

// CatalogoHandler maneja las páginas del catálogo.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// PaginaCategoria godoc
// @Summary      Productos de una página (tipo, subcategoría)
// @Tags         catalogo
// @Produce      json
// @Param        tipo          path  string  true  "perifericos | consolas | juegos"
// @Param        subcategoria  path  string  true  "ej. teclados, playstation, ps5"
// @Success      200  {object}  dto.PaginaCategoriaResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalogo/{tipo}/{subcategoria} [get]
func (h *CatalogoHandler) PaginaCategoria(c *fiber.Ctx) error {
	tipo := c.Params("tipo")
	subcategoria := c.Params("subcategoria")
	out, err := h.uc.PaginaCategoria(c.UserContext(), tipo, subcategoria)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Destacados godoc
// @Summary      Productos destacados
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.ListaProductosResponse
// @Router       /api/catalogo/destacados [get]
func (h *CatalogoHandler) Destacados(c *fiber.Ctx) error {
	out, err := h.uc.Destacados(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Ofertas godoc
// @Summary      Productos en oferta
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.ListaProductosResponse
// @Router       /api/catalogo/ofertas [get]
func (h *CatalogoHandler) Ofertas(c *fiber.Ctx) error {
	out, err := h.uc.Ofertas(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Buscar productos por término
// @Tags         catalogo
// @Produce      json
// @Param        q  query  string  true  "término de búsqueda"
// @Success      200  {object}  dto.ListaProductosResponse
// @Router       /api/catalogo/buscar [get]
func (h *CatalogoHandler) Buscar(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	out, err := h.uc.Buscar(c.UserContext(), q)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PorID godoc
// @Summary      Producto por ID
// @Tags         catalogo
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogo/productos/{id} [get]
func (h *CatalogoHandler) PorID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.PorID(c.UserContext(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
