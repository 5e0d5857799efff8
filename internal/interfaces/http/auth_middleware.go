package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// LocalUser key del usuario autenticado en c.Locals.
const LocalUser = "usuario"

// userResolver resuelve el usuario dueño de un token de sesión.
type userResolver interface {
	GetByToken(ctx context.Context, token string) (*entity.User, error)
}

// RequireUser valida el Bearer token opaco contra la tabla de usuarios y deja
// el *entity.User en c.Locals.
func RequireUser(users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autenticado"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autenticado"))
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autenticado"))
		}
		user, err := users.GetByToken(c.Context(), token)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autenticado"))
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin exige rol admin_general. Debe ir después de RequireUser.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Se requiere rol admin"))
		}
		return c.Next()
	}
}

// CurrentUser devuelve el usuario del contexto (después de RequireUser) o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
