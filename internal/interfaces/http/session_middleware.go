package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalSessionID clave en c.Locals para el id de sesión.
const LocalSessionID = "session_id"

// SessionMiddleware garantiza que cada request tenga una sesión: lee la cookie
// o emite una nueva con un uuid. La cookie es de sesión del navegador (sin
// Expires): al cerrar el navegador el carrito y las credenciales se pierden.
func SessionMiddleware(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    id,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				// la cookie muere con el navegador, como el storage de sesión
				SessionOnly: true,
			})
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (tras el middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
