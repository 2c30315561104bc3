package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo verificación de credenciales sobre core.login_user.
// El procedimiento compara el digest recibido contra el almacenado y devuelve
// la identidad junto con sus nombres de permiso en un solo round trip.
type CredentialRepo struct {
	db Querier
}

// NewCredentialRepository construye el adaptador de verificación de credenciales.
func NewCredentialRepository(db Querier) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// VerifyCredentials presenta email y digest a core.login_user.
// Cero filas o más de una fila (resultado ambiguo) => (nil, nil, nil); el caso
// de uso lo colapsa a credenciales inválidas. Un error de la base se propaga
// con detalle: fallo de infraestructura, no de credenciales.
func (r *CredentialRepo) VerifyCredentials(ctx context.Context, email string, passwordDigest []byte) (*entity.User, []string, error) {
	query := `
		SELECT user_id, full_name, email, role_id, role_name, status_id,
		       created_at, password_expiry_date, created_by, employee_id, permissions
		FROM core.login_user($1, $2)`
	rows, err := r.db.Query(ctx, query, email, passwordDigest)
	if err != nil {
		return nil, nil, fmt.Errorf("core.login_user: %w", err)
	}
	defer rows.Close()

	var (
		user        *entity.User
		permissions []string
		matches     int
	)
	for rows.Next() {
		var u entity.User
		var perms []string
		if err := rows.Scan(
			&u.UserID, &u.FullName, &u.Email, &u.RoleID, &u.RoleName, &u.StatusID,
			&u.CreatedAt, &u.PasswordExpiryDate, &u.CreatedBy, &u.EmployeeID, &perms,
		); err != nil {
			return nil, nil, fmt.Errorf("scan login_user: %w", err)
		}
		matches++
		user = &u
		permissions = perms
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("leer login_user: %w", err)
	}
	// Resultado ambiguo: más de una identidad para el mismo par email/digest
	// se trata igual que ninguna.
	if matches != 1 {
		return nil, nil, nil
	}
	if permissions == nil {
		permissions = []string{}
	}
	return user, permissions, nil
}
