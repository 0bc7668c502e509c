package dto

// ItemCarritoResponse una línea del carrito.
type ItemCarritoResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Precio    string `json:"precio"` // string de despliegue
	Imagen    string `json:"imagen,omitempty"`
	Categoria string `json:"categoria,omitempty"`
	Cantidad  int    `json:"cantidad"`
	Subtotal  string `json:"subtotal"`
}

// CarritoResponse estado completo del carrito para la vista.
type CarritoResponse struct {
	Items   []ItemCarritoResponse `json:"items"`
	Total   string                `json:"total"`       // de despliegue
	Monto   int64                 `json:"monto"`       // total numérico
	Conteo  int                   `json:"conteo"`      // suma de cantidades (badge)
	Visible bool                  `json:"visible"`
}

// FijarCantidadRequest cuerpo de PUT /api/carrito/items/:id.
type FijarCantidadRequest struct {
	Cantidad int `json:"cantidad"`
}

// VisibilidadRequest cuerpo opcional de POST /api/carrito/visibilidad.
// Sin cuerpo (o sin campo) la operación alterna la bandera.
type VisibilidadRequest struct {
	Visible *bool `json:"visible"`
}
