package entity

import "github.com/elpepe-gamestop/storefront/internal/domain/pricing"

// LineaCarrito es una entrada del carrito, con clave única por ID de producto.
// El precio se normaliza una sola vez al momento de la inserción; Cantidad es
// siempre >= 1 (cantidad <= 0 destruye la línea).
type LineaCarrito struct {
	ID        int64          `json:"id"`
	Nombre    string         `json:"nombre"`
	Precio    pricing.Precio `json:"precio"`
	Imagen    string         `json:"imagen"`
	Categoria string         `json:"categoria"`
	Cantidad  int            `json:"cantidad"`
}
