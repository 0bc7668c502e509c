package entity

import "github.com/elpepe-gamestop/storefront/internal/domain/pricing"

// Producto es la forma canónica de un producto del catálogo, de solo lectura
// para el storefront (el backend es el dueño de los datos).
type Producto struct {
	ID          int64          `json:"id"`
	Nombre      string         `json:"nombre"`
	Descripcion string         `json:"descripcion"`
	Categoria   string         `json:"categoria"` // gruesa: perifericos | consolas | juegos
	Precio      pricing.Precio `json:"precio"`
	Imagen      string         `json:"imagen"`
	Stock       int            `json:"stock"` // >= 0; cero significa no disponible
}

// Disponible indica si el producto puede agregarse al carrito.
func (p Producto) Disponible() bool {
	return p.Stock > 0
}
