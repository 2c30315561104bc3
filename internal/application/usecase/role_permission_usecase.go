package usecase

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// RolePermissionUseCase administración de permisos por rol. Como los permisos
// se re-resuelven en cada request, un grant/revoke aquí surte efecto inmediato
// para todas las sesiones abiertas, sin re-login.
type RolePermissionUseCase struct {
	runner ports.SessionRunner
}

// NewRolePermissionUseCase construye el caso de uso de permisos de rol.
func NewRolePermissionUseCase(runner ports.SessionRunner) *RolePermissionUseCase {
	return &RolePermissionUseCase{runner: runner}
}

// Grant otorga un permiso a un rol, atribuido al actor.
func (uc *RolePermissionUseCase) Grant(ctx context.Context, actorID int, in dto.RolePermissionRequest) error {
	if in.RoleID <= 0 || in.PermissionID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.Permissions.Grant(ctx, in.RoleID, in.PermissionID, actorID)
	})
}

// Revoke retira un permiso de un rol, atribuido al actor.
func (uc *RolePermissionUseCase) Revoke(ctx context.Context, actorID int, in dto.RolePermissionRequest) error {
	if in.RoleID <= 0 || in.PermissionID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.Permissions.Revoke(ctx, in.RoleID, in.PermissionID)
	})
}
