package dto

// ProductoResponse salida de un producto con el precio ya listo para mostrar.
type ProductoResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Categoria   string `json:"categoria"`
	Precio      string `json:"precio"`         // string de despliegue ($1.234.567)
	Monto       int64  `json:"monto"`          // monto numérico canónico
	Imagen      string `json:"imagen,omitempty"`
	Stock       int    `json:"stock"`
	Disponible  bool   `json:"disponible"`
}

// PaginaCategoriaResponse productos de una página (tipo, subcategoría).
type PaginaCategoriaResponse struct {
	Tipo         string             `json:"tipo"`
	Subcategoria string             `json:"subcategoria"`
	Productos    []ProductoResponse `json:"productos"`
	Total        int                `json:"total"`
}

// ListaProductosResponse productos sin filtrado por subcategoría.
type ListaProductosResponse struct {
	Productos []ProductoResponse `json:"productos"`
	Total     int                `json:"total"`
}
