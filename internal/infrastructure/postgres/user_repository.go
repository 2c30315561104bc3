package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// UserRepo cuentas de usuario sobre los procedimientos de core.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Add provisiona una cuenta vía core.add_user y devuelve el UserID generado.
func (r *UserRepo) Add(ctx context.Context, u *entity.NewUser) (int, error) {
	query := `SELECT core.add_user($1, $2, $3, $4, $5, $6)`
	var userID int
	err := r.db.QueryRow(ctx, query,
		u.FullName, u.Email, u.PasswordDigest, u.RoleID, u.CreatedBy, u.StatusID,
	).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		if isRaisedByProcedure(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return 0, fmt.Errorf("core.add_user: %w", err)
	}
	return userID, nil
}

// List lista las cuentas vía core.get_all_users.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	query := `
		SELECT user_id, full_name, email, role_id, role_name, status_id,
		       created_at, password_expiry_date, created_by, employee_id
		FROM core.get_all_users()`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("core.get_all_users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.UserID, &u.FullName, &u.Email, &u.RoleID, &u.RoleName, &u.StatusID,
			&u.CreatedAt, &u.PasswordExpiryDate, &u.CreatedBy, &u.EmployeeID,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// AuditLogRepo lectura del log de auditoría.
type AuditLogRepo struct {
	db Querier
}

// NewAuditLogRepository construye el adaptador del log de auditoría.
func NewAuditLogRepository(db Querier) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

// ListAll devuelve el log completo vía hr.get_all_audit_log.
func (r *AuditLogRepo) ListAll(ctx context.Context) ([]entity.AuditLogEntry, error) {
	query := `
		SELECT audit_id, table_name, primary_key_value, action_type, action_date,
		       user_id, COALESCE(role_name, ''), COALESCE(employee_name, '')
		FROM hr.get_all_audit_log()`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("hr.get_all_audit_log: %w", err)
	}
	defer rows.Close()

	var entries []entity.AuditLogEntry
	for rows.Next() {
		var e entity.AuditLogEntry
		if err := rows.Scan(
			&e.AuditID, &e.TableName, &e.PrimaryKeyValue, &e.ActionType, &e.ActionDate,
			&e.UserID, &e.RoleName, &e.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
