package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
)

// permissionResolver es el contrato mínimo que necesita el middleware para
// resolver permisos. Lo implementa *auth.AuthUseCase; el uso de interfaz evita
// el import circular y permite fakes en tests.
type permissionResolver interface {
	Permissions(ctx context.Context, userID int) ([]string, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el usuario
// autenticado tiene el permiso indicado. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalUserID).
//
// El permiso se re-resuelve contra la base en CADA request: un grant/revoke
// surte efecto inmediato sin re-login, a costa de una consulta por llamada.
//
// Comportamiento:
//   - 401 Unauthorized → no hay identidad en el contexto.
//   - 403 Forbidden → identidad válida sin el permiso (distinto de 401).
//   - 503 Service Unavailable → fallo de infraestructura al resolver.
func RequirePermission(permission string, resolver permissionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		perms, err := resolver.Permissions(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudieron verificar los permisos, intente más tarde",
			})
		}

		for _, p := range perms {
			if p == permission {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "no tiene el permiso '" + permission + "'",
		})
	}
}
