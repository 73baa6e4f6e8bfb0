package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/pkg/jwt"
)

// LocalCaller es la key de c.Locals donde queda el solicitante autenticado.
const LocalCaller = "caller"

// callerLoader es el contrato mínimo que necesita el middleware para cargar al
// usuario del token. Lo implementa repository.UserRepository; la interfaz
// evita acoplar el middleware a la capa de persistencia.
type callerLoader interface {
	GetByID(id string) (*entity.User, error)
}

// RequireAuth valida el JWT (header Authorization o cookie "token"), carga al
// usuario y deja un scope.Caller en c.Locals. El usuario debe existir y estar
// activo: un token válido de una cuenta desactivada responde 403.
func RequireAuth(tokens *jwt.Service, users callerLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies("token")
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado para acceder a esta ruta"))
		}
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			if err == jwt.ErrExpired {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("la sesión expiró, inicie sesión de nuevo"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido"))
		}
		user, err := users.GetByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado para acceder a esta ruta"))
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("la cuenta está desactivada"))
		}
		c.Locals(LocalCaller, scope.FromUser(user))
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles indicados. Debe usarse DESPUÉS de
// RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := GetCaller(c)
		if caller.ID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado para acceder a esta ruta"))
		}
		for _, role := range roles {
			if caller.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("el rol " + caller.Role + " no puede acceder a esta ruta"))
	}
}

// GetCaller devuelve el solicitante del contexto (después de RequireAuth).
func GetCaller(c *fiber.Ctx) scope.Caller {
	v := c.Locals(LocalCaller)
	if v == nil {
		return scope.Caller{}
	}
	caller, _ := v.(scope.Caller)
	return caller
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
