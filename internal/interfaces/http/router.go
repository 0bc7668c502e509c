package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elpepe-gamestop/storefront/internal/application/auth"
	"github.com/elpepe-gamestop/storefront/internal/application/usecase"
	"github.com/elpepe-gamestop/storefront/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogoUC    *usecase.CatalogoUseCase
	CarritoUC     *usecase.CarritoUseCase
	AuthUC        *auth.AuthUseCase
	Log           *logger.Logger
	SessionCookie string
}

// Router registra las rutas del storefront. Todas las rutas pasan por el
// middleware de sesión (el carrito y las credenciales viven por sesión).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.SessionCookie))

	// Catálogo
	catalogo := api.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogo.Get("/destacados", catalogoHandler.Destacados)
	catalogo.Get("/ofertas", catalogoHandler.Ofertas)
	catalogo.Get("/buscar", catalogoHandler.Buscar)
	catalogo.Get("/productos/:id", catalogoHandler.PorID)
	// Las páginas del sitio: /perifericos/teclados, /consolas/playstation, /juegos/ps5, ...
	catalogo.Get("/:tipo/:subcategoria", catalogoHandler.PaginaCategoria)

	// Carrito
	carrito := api.Group("/carrito")
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carrito.Get("/", carritoHandler.Ver)
	carrito.Delete("/", carritoHandler.Vaciar)
	carrito.Post("/items", carritoHandler.Agregar)
	carrito.Put("/items/:id", carritoHandler.FijarCantidad)
	carrito.Delete("/items/:id", carritoHandler.Quitar)
	carrito.Post("/visibilidad", carritoHandler.Visibilidad)

	// Usuarios
	usuarios := api.Group("/usuarios")
	usuariosHandler := NewUsuariosHandler(deps.AuthUC)
	usuarios.Post("/signup", usuariosHandler.Signup)
	usuarios.Post("/login", usuariosHandler.Login)
	usuarios.Post("/logout", usuariosHandler.Logout)
	usuarios.Get("/me", usuariosHandler.Actual)

	// Contacto
	contactoHandler := NewContactoHandler(deps.Log)
	api.Post("/contacto", contactoHandler.Enviar)
}
