package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo resolución y administración de permisos sobre los
// procedimientos de core. Sin caché: cada llamada va a la base.
type PermissionRepo struct {
	db Querier
}

// NewPermissionRepository construye el adaptador de permisos.
func NewPermissionRepository(db Querier) *PermissionRepo {
	return &PermissionRepo{db: db}
}

// PermissionsByUser consulta core.get_permissions_by_user. Cero permisos es
// un slice vacío; un error de la base se propaga distinto de "sin permisos".
func (r *PermissionRepo) PermissionsByUser(ctx context.Context, userID int) ([]string, error) {
	query := `SELECT permission_name FROM core.get_permissions_by_user($1)`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("core.get_permissions_by_user: %w", err)
	}
	defer rows.Close()

	permissions := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		permissions = append(permissions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer permisos: %w", err)
	}
	return permissions, nil
}

// Grant otorga un permiso a un rol vía core.add_role_permission.
func (r *PermissionRepo) Grant(ctx context.Context, roleID, permissionID, grantedBy int) error {
	_, err := r.db.Exec(ctx, `CALL core.add_role_permission($1, $2, $3)`, roleID, permissionID, grantedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isRaisedByProcedure(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, err.Error())
		}
		return fmt.Errorf("core.add_role_permission: %w", err)
	}
	return nil
}

// Revoke retira un permiso de un rol vía core.delete_role_permission.
func (r *PermissionRepo) Revoke(ctx context.Context, roleID, permissionID int) error {
	_, err := r.db.Exec(ctx, `CALL core.delete_role_permission($1, $2)`, roleID, permissionID)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("core.delete_role_permission: %w", err)
	}
	return nil
}
