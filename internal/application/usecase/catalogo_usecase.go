package usecase

import (
	"context"

	"github.com/elpepe-gamestop/storefront/internal/application/dto"
	"github.com/elpepe-gamestop/storefront/internal/domain/catalog"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
)

// CatalogoUseCase arma las páginas del catálogo: trae los productos del
// backend y los filtra con la tabla de palabras clave. Si la petición
// upstream falla, el matcher nunca llega a ejecutarse: el error sube tal
// cual para que la vista muestre su estado de error.
type CatalogoUseCase struct {
	api   repository.CatalogoAPI
	tabla catalog.Tabla
}

// NewCatalogoUseCase construye el caso de uso con la tabla por defecto.
func NewCatalogoUseCase(api repository.CatalogoAPI) *CatalogoUseCase {
	return &CatalogoUseCase{api: api, tabla: catalog.TablaPorDefecto}
}

// NewCatalogoUseCaseConTabla permite inyectar una tabla distinta (la tabla es
// un parche por la falta de subcategoría explícita en el modelo upstream).
func NewCatalogoUseCaseConTabla(api repository.CatalogoAPI, tabla catalog.Tabla) *CatalogoUseCase {
	return &CatalogoUseCase{api: api, tabla: tabla}
}

// PaginaCategoria devuelve los productos de la página (tipo, subcategoria).
func (uc *CatalogoUseCase) PaginaCategoria(ctx context.Context, tipo, subcategoria string) (*dto.PaginaCategoriaResponse, error) {
	productos, err := uc.api.PorCategoria(ctx, tipo)
	if err != nil {
		return nil, err
	}
	filtrados := uc.tabla.Filtrar(productos, tipo, subcategoria)
	return &dto.PaginaCategoriaResponse{
		Tipo:         tipo,
		Subcategoria: subcategoria,
		Productos:    aProductosResponse(filtrados),
		Total:        len(filtrados),
	}, nil
}

// Destacados devuelve los productos destacados del backend.
func (uc *CatalogoUseCase) Destacados(ctx context.Context) (*dto.ListaProductosResponse, error) {
	return uc.lista(uc.api.Destacados(ctx))
}

// Ofertas devuelve los productos en oferta.
func (uc *CatalogoUseCase) Ofertas(ctx context.Context) (*dto.ListaProductosResponse, error) {
	return uc.lista(uc.api.Ofertas(ctx))
}

// Buscar busca productos por término libre.
func (uc *CatalogoUseCase) Buscar(ctx context.Context, q string) (*dto.ListaProductosResponse, error) {
	return uc.lista(uc.api.Buscar(ctx, q))
}

// PorID devuelve un producto puntual; domain.ErrNotFound si no existe.
func (uc *CatalogoUseCase) PorID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.api.PorID(ctx, id)
	if err != nil {
		return nil, err
	}
	r := aProductoResponse(*p)
	return &r, nil
}

func (uc *CatalogoUseCase) lista(productos []entity.Producto, err error) (*dto.ListaProductosResponse, error) {
	if err != nil {
		return nil, err
	}
	return &dto.ListaProductosResponse{
		Productos: aProductosResponse(productos),
		Total:     len(productos),
	}, nil
}

func aProductosResponse(productos []entity.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, len(productos))
	for i, p := range productos {
		out[i] = aProductoResponse(p)
	}
	return out
}

func aProductoResponse(p entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		Precio:      p.Precio.Mostrar(),
		Monto:       p.Precio.Monto().IntPart(),
		Imagen:      p.Imagen,
		Stock:       p.Stock,
		Disponible:  p.Disponible(),
	}
}
