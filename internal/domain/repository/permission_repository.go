package repository

import "context"

// PermissionRepository resuelve y administra permisos efectivos (DIP).
type PermissionRepository interface {
	// PermissionsByUser consulta core.get_permissions_by_user SIN caché:
	// cada llamada refleja el estado actual de la base. Cero permisos es un
	// slice vacío, no un error; un error no nulo es fallo de infraestructura.
	PermissionsByUser(ctx context.Context, userID int) ([]string, error)

	// Grant otorga un permiso a un rol (core.add_role_permission).
	Grant(ctx context.Context, roleID, permissionID, grantedBy int) error

	// Revoke retira un permiso de un rol (core.delete_role_permission).
	Revoke(ctx context.Context, roleID, permissionID int) error
}
