package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/pkg/jwt"
)

// LocalActor es la key de c.Locals donde viaja el Actor autenticado.
const LocalActor = "actor"

// AuthMiddleware valida el Bearer Token JWT y deja el Actor en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalActor, dto.Actor{
			UserID:   claims.UserID,
			Role:     entity.Role(claims.Role),
			Location: entity.Location(claims.Location),
			IP:       c.IP(),
		})
		return c.Next()
	}
}

// GetActor devuelve el Actor del contexto (después del middleware de auth).
func GetActor(c *fiber.Ctx) dto.Actor {
	actor, _ := c.Locals(LocalActor).(dto.Actor)
	return actor
}

// RequireRole autoriza sólo a los roles indicados. Un token sin claim de rol
// retorna 401; un rol no permitido, 403.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.Role == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_ROLE", "token sin rol")
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin permiso para esta operación")
	}
}

// RequireLocation exige que el actor tenga un bar asignado (o sea admin).
func RequireLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.IsAdmin() || actor.Location != "" {
			return c.Next()
		}
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "operación requiere bar asignado")
	}
}
