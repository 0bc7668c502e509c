// Package backend implementa el cliente HTTP del catálogo y de usuarios.
// Usa net/http de la librería estándar; el contrato JSON es el del backend
// de la tienda (/api/productos, /api/usuarios). Sin reintentos ni
// deduplicación: una petición por acción de usuario.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/elpepe-gamestop/storefront/internal/domain"
	"github.com/elpepe-gamestop/storefront/internal/domain/entity"
	"github.com/elpepe-gamestop/storefront/internal/domain/pricing"
	"github.com/elpepe-gamestop/storefront/internal/domain/repository"
)

// Verificación en tiempo de compilación de los contratos consumidos.
var (
	_ repository.CatalogoAPI = (*Cliente)(nil)
	_ repository.UsuariosAPI = (*Cliente)(nil)
)

// Cliente habla con el backend de la tienda.
type Cliente struct {
	baseURL    string // ej. http://localhost:8080/api
	httpClient *http.Client
}

// NewCliente construye el cliente. Sin timeout una petición colgada dejaría
// la vista cargando para siempre; el timeout de red es configurable y el
// context permite cancelar.
func NewCliente(baseURL string, timeout time.Duration) *Cliente {
	return &Cliente{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── forma de alambre ──────────────────────────────────────────────────────────

// productoWire acepta los dos juegos de nombres de campo que entregan las
// distintas fuentes (contrato en inglés y datos legados en español). Cuando
// ambos vienen, el campo en español tiene precedencia.
type productoWire struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Nombre      string         `json:"nombre"`
	Description string         `json:"description"`
	Descripcion string         `json:"descripcion"`
	Category    string         `json:"category"`
	Categoria   string         `json:"categoria"`
	Price       pricing.Precio `json:"price"`
	Precio      pricing.Precio `json:"precio"`
	ImageURL    string         `json:"imageUrl"`
	Imagen      string         `json:"imagen"`
	Stock       int            `json:"stock"`
}

func (w productoWire) aEntidad() entity.Producto {
	p := entity.Producto{
		ID:          w.ID,
		Nombre:      w.Nombre,
		Descripcion: w.Descripcion,
		Categoria:   w.Categoria,
		Precio:      w.Precio,
		Imagen:      w.Imagen,
		Stock:       w.Stock,
	}
	if p.Nombre == "" {
		p.Nombre = w.Name
	}
	if p.Descripcion == "" {
		p.Descripcion = w.Description
	}
	if p.Categoria == "" {
		p.Categoria = w.Category
	}
	if p.Precio.EsVacio() {
		p.Precio = w.Price
	}
	if p.Imagen == "" {
		p.Imagen = w.ImageURL
	}
	return p
}

// credencialesWire respuesta 2xx de signup/login: authToken más los campos
// del usuario al mismo nivel. El objeto completo se guarda como user.
type credencialesWire struct {
	AuthToken string `json:"authToken"`
}

// ── CatalogoAPI ───────────────────────────────────────────────────────────────

// Listar trae todos los productos, con filtros opcionales por query string.
func (c *Cliente) Listar(ctx context.Context, f repository.FiltrosProducto) ([]entity.Producto, error) {
	params := url.Values{}
	if f.Categoria != "" {
		params.Set("categoria", f.Categoria)
	}
	if f.Plataforma != "" {
		params.Set("plataforma", f.Plataforma)
	}
	if f.Destacado != nil {
		params.Set("destacado", strconv.FormatBool(*f.Destacado))
	}
	if f.EnOferta != nil {
		params.Set("enOferta", strconv.FormatBool(*f.EnOferta))
	}
	ruta := "/productos"
	if len(params) > 0 {
		ruta += "?" + params.Encode()
	}
	return c.listaProductos(ctx, ruta)
}

// PorID trae un producto puntual; domain.ErrNotFound (vía ErrorRemoto) si no existe.
func (c *Cliente) PorID(ctx context.Context, id int64) (*entity.Producto, error) {
	var w productoWire
	if err := c.get(ctx, fmt.Sprintf("/productos/%d", id), &w); err != nil {
		return nil, err
	}
	p := w.aEntidad()
	return &p, nil
}

// Buscar busca productos por término libre.
func (c *Cliente) Buscar(ctx context.Context, q string) ([]entity.Producto, error) {
	return c.listaProductos(ctx, "/productos/buscar?q="+url.QueryEscape(q))
}

// Destacados trae los productos destacados.
func (c *Cliente) Destacados(ctx context.Context) ([]entity.Producto, error) {
	return c.listaProductos(ctx, "/productos/destacados")
}

// Ofertas trae los productos en oferta.
func (c *Cliente) Ofertas(ctx context.Context) ([]entity.Producto, error) {
	return c.listaProductos(ctx, "/productos/ofertas")
}

// PorCategoria trae los productos de una categoría gruesa.
func (c *Cliente) PorCategoria(ctx context.Context, categoria string) ([]entity.Producto, error) {
	return c.listaProductos(ctx, "/productos/categoria/"+url.PathEscape(categoria))
}

func (c *Cliente) listaProductos(ctx context.Context, ruta string) ([]entity.Producto, error) {
	var wire []productoWire
	if err := c.get(ctx, ruta, &wire); err != nil {
		return nil, err
	}
	productos := make([]entity.Producto, len(wire))
	for i, w := range wire {
		productos[i] = w.aEntidad()
	}
	return productos, nil
}

// ── UsuariosAPI ───────────────────────────────────────────────────────────────

// Signup registra al usuario y devuelve el token más el usuario serializado.
func (c *Cliente) Signup(ctx context.Context, datos repository.DatosSignup) (*entity.Credenciales, error) {
	return c.sesion(ctx, "/usuarios/signup", datos)
}

// Login inicia sesión; el backend responde no-2xx ante credenciales inválidas.
func (c *Cliente) Login(ctx context.Context, email, password string) (*entity.Credenciales, error) {
	return c.sesion(ctx, "/usuarios/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Cliente) sesion(ctx context.Context, ruta string, cuerpo any) (*entity.Credenciales, error) {
	crudo, err := c.post(ctx, ruta, cuerpo)
	if err != nil {
		return nil, err
	}
	var w credencialesWire
	if err := json.Unmarshal(crudo, &w); err != nil {
		return nil, fmt.Errorf("backend: respuesta de sesión malformada: %w", err)
	}
	// El objeto completo de la respuesta se guarda como user: la vista
	// espera el JSON entero, token incluido.
	return &entity.Credenciales{AuthToken: w.AuthToken, Usuario: crudo}, nil
}

// ── plomería HTTP ─────────────────────────────────────────────────────────────

func (c *Cliente) get(ctx context.Context, ruta string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ruta, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	cuerpo, err := c.hacer(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(cuerpo, out)
}

func (c *Cliente) post(ctx context.Context, ruta string, cuerpo any) ([]byte, error) {
	payload, err := json.Marshal(cuerpo)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ruta, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.hacer(req)
}

// hacer ejecuta la petición y mapea las respuestas no-2xx a domain.ErrorRemoto
// con el campo message del cuerpo (apto para mostrar).
func (c *Cliente) hacer(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	cuerpo, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(cuerpo, &e)
		return nil, &domain.ErrorRemoto{Status: resp.StatusCode, Mensaje: e.Message}
	}
	return cuerpo, nil
}
