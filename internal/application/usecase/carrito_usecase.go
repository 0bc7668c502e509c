package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/domain/cart"
	"github.com/elpepe-gamestop/storefront/internal/domain/pricing"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
)

// CarritoUseCase opera el carrito de la sesión. Todas las operaciones son
// totales: nunca fallan, los IDs ausentes son no-ops. Por eso ningún método
// devuelve error; la respuesta siempre es el estado resultante del carrito.
type CarritoUseCase struct {
	sesiones repository.Sesiones
}

// NewCarritoUseCase construye el caso de uso.
func NewCarritoUseCase(sesiones repository.Sesiones) *CarritoUseCase {
	return &CarritoUseCase{sesiones: sesiones}
}

// Ver devuelve el estado actual del carrito.
func (uc *CarritoUseCase) Ver(sessionID string) *dto.CarritoResponse {
	return aCarritoResponse(uc.sesiones.Carrito(sessionID))
}

// Agregar suma un producto (en cualquiera de las dos formas de campo).
func (uc *CarritoUseCase) Agregar(sessionID string, e cart.Entrada) *dto.CarritoResponse {
	c := uc.sesiones.Carrito(sessionID)
	c.Agregar(e)
	return aCarritoResponse(c)
}

// FijarCantidad fija la cantidad de una línea; <= 0 la elimina.
func (uc *CarritoUseCase) FijarCantidad(sessionID string, id int64, cantidad int) *dto.CarritoResponse {
	c := uc.sesiones.Carrito(sessionID)
	c.FijarCantidad(id, cantidad)
	return aCarritoResponse(c)
}

// Quitar elimina una línea; no-op si no existe.
func (uc *CarritoUseCase) Quitar(sessionID string, id int64) *dto.CarritoResponse {
	c := uc.sesiones.Carrito(sessionID)
	c.Quitar(id)
	return aCarritoResponse(c)
}

// Vaciar elimina todas las líneas.
func (uc *CarritoUseCase) Vaciar(sessionID string) *dto.CarritoResponse {
	c := uc.sesiones.Carrito(sessionID)
	c.Vaciar()
	return aCarritoResponse(c)
}

// Visibilidad alterna la bandera del panel, o la fija si visible no es nil.
func (uc *CarritoUseCase) Visibilidad(sessionID string, visible *bool) *dto.CarritoResponse {
	c := uc.sesiones.Carrito(sessionID)
	if visible != nil {
		c.FijarVisibilidad(*visible)
	} else {
		c.AlternarVisibilidad()
	}
	return aCarritoResponse(c)
}

func aCarritoResponse(c *cart.Store) *dto.CarritoResponse {
	lineas := c.Lineas()
	items := make([]dto.ItemCarritoResponse, len(lineas))
	for i, l := range lineas {
		subtotal := l.Precio.Monto().Mul(decimal.NewFromInt(int64(l.Cantidad)))
		items[i] = dto.ItemCarritoResponse{
			ID:        l.ID,
			Nombre:    l.Nombre,
			Precio:    l.Precio.Mostrar(),
			Imagen:    l.Imagen,
			Categoria: l.Categoria,
			Cantidad:  l.Cantidad,
			Subtotal:  pricing.FormatearMonto(subtotal),
		}
	}
	total := c.Total()
	return &dto.CarritoResponse{
		Items:   items,
		Total:   pricing.FormatearMonto(total),
		Monto:   total.IntPart(),
		Conteo:  c.ConteoItems(),
		Visible: c.Visible(),
	}
}
