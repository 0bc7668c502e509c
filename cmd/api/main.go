package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/elpepe-gamestop/storefront/internal/application/auth"
	"github.com/elpepe-gamestop/storefront/internal/application/usecase"
	"github.com/elpepe-gamestop/storefront/internal/infrastructure/backend"
	"github.com/elpepe-gamestop/storefront/internal/infrastructure/memory"
	httpRouter "github.com/elpepe-gamestop/storefront/internal/interfaces/http"
	"github.com/elpepe-gamestop/storefront/pkg/config"
	"github.com/elpepe-gamestop/storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando storefront")

	cliente := backend.NewCliente(cfg.Backend.BaseURL, cfg.Backend.Timeout())
	sesiones := memory.NewSesionStore(cfg.Session.TTL())

	catalogoUC := usecase.NewCatalogoUseCase(cliente)
	carritoUC := usecase.NewCarritoUseCase(sesiones)
	authUC := appauth.NewAuthUseCase(cliente, sesiones)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ElPepe Gamestop Storefront",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  cfg.App.Name,
			"sesiones": sesiones.Activas(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC:    catalogoUC,
		CarritoUC:     carritoUC,
		AuthUC:        authUC,
		Log:           log,
		SessionCookie: cfg.Session.CookieName,
	})

	// Barrido periódico de sesiones inactivas
	barrido := time.NewTicker(10 * time.Minute)
	defer barrido.Stop()
	go func() {
		for range barrido.C {
			if n := sesiones.Barrer(); n > 0 {
				log.Debug().Int("sesiones", n).Msg("sesiones inactivas barridas")
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
