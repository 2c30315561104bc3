package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
)

// Locals keys para los claims de identidad en Fiber.
const (
	LocalUserID   = "user_id"
	LocalFullName = "full_name"
	LocalEmail    = "email"
	LocalRoleName = "role"
	LocalRoleID   = "role_id"
	LocalStatusID = "status_id"
)

// AuthMiddleware valida el Bearer Token JWT (firma, emisor, audiencia y
// expiración sin tolerancia de reloj) y extrae la identidad a c.Locals.
// Cualquier fallo colapsa en un 401 indiferenciado: el cliente no distingue
// firma rota de token vencido.
func AuthMiddleware(jwtCfg pkgjwt.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := pkgjwt.Parse(jwtCfg, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		userID, err := claims.UserID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalFullName, claims.FullName)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRoleName, claims.RoleName)
		c.Locals(LocalRoleID, claims.RoleID)
		c.Locals(LocalStatusID, claims.StatusID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth);
// 0 si no hay identidad.
func GetUserID(c *fiber.Ctx) int {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetRoleName devuelve el nombre del rol del contexto.
func GetRoleName(c *fiber.Ctx) string {
	v := c.Locals(LocalRoleName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetFullName devuelve el nombre completo del contexto.
func GetFullName(c *fiber.Ctx) string {
	v := c.Locals(LocalFullName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
