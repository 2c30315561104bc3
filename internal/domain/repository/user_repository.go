package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas de usuario (DIP).
type UserRepository interface {
	// Add provisiona una cuenta vía core.add_user y devuelve el UserID generado.
	Add(ctx context.Context, u *entity.NewUser) (int, error)

	// List lista las cuentas existentes (core.get_all_users).
	List(ctx context.Context) ([]entity.User, error)
}

// AuditLogRepository lectura del log de auditoría (hr.get_all_audit_log).
type AuditLogRepository interface {
	ListAll(ctx context.Context) ([]entity.AuditLogEntry, error)
}
