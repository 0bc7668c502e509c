package repository

import (
	"context"

	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
)

// FiltrosProducto filtros opcionales de GET /api/productos.
type FiltrosProducto struct {
	Categoria  string
	Plataforma string
	Destacado  *bool
	EnOferta   *bool
}

// CatalogoAPI contrato consumido del backend de productos. Una petición en
// vuelo por acción de usuario; sin deduplicación ni reintentos.
type CatalogoAPI interface {
	Listar(ctx context.Context, filtros FiltrosProducto) ([]entity.Producto, error)
	PorID(ctx context.Context, id int64) (*entity.Producto, error)
	Buscar(ctx context.Context, q string) ([]entity.Producto, error)
	Destacados(ctx context.Context) ([]entity.Producto, error)
	Ofertas(ctx context.Context) ([]entity.Producto, error)
	PorCategoria(ctx context.Context, categoria string) ([]entity.Producto, error)
}
