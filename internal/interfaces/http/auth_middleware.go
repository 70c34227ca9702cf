package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// LocalUsername clave en c.Locals del usuario autenticado.
const LocalUsername = "username"

// AuthMiddleware valida el Bearer Token JWT y guarda el usuario en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "expected format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "empty token")
		}
		username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, reason string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return fmt.Errorf("%w: %s", domain.ErrUnauthorized, reason)
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
