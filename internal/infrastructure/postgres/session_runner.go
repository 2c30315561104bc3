package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Talento-api/internal/application/ports"
)

// Ensure SessionRunner implements ports.SessionRunner.
var _ ports.SessionRunner = (*SessionRunner)(nil)

// SessionRunner ejecuta unidades de trabajo mutantes con el actor atado al
// session context de PostgreSQL, el equivalente de sp_set_session_context en
// SQL Server: los triggers de auditoría leen hr.current_user_id para estampar
// cada escritura con quién la hizo.
type SessionRunner struct {
	pool *pgxpool.Pool
}

// NewSessionRunner construye el runner con el pool.
func NewSessionRunner(pool *pgxpool.Pool) *SessionRunner {
	return &SessionRunner{pool: pool}
}

// RunAsUser toma una conexión propia del pool, abre una transacción, ata el
// actor con set_config(..., is_local = true) y ejecuta fn con repos atados a
// la tx. Commit al final; Rollback en cualquier fallo.
//
// El binding es local a la transacción: al hacer commit o rollback desaparece,
// así que la conexión vuelve al pool limpia y un request posterior jamás hereda
// el actor de otro. Cada RunAsUser re-ata el actor en su propio checkout; si el
// binding falla, fn no se ejecuta y nada se escribe sin atribución.
func (r *SessionRunner) RunAsUser(ctx context.Context, userID int, fn func(repos ports.MutationRepos) error) error {
	if userID <= 0 {
		return fmt.Errorf("session runner: userID inválido %d", userID)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`SELECT set_config('hr.current_user_id', $1, true)`,
		strconv.Itoa(userID),
	); err != nil {
		return fmt.Errorf("atar actor a la sesión: %w", err)
	}

	repos := ports.MutationRepos{
		Departments: NewDepartmentRepository(tx),
		JobOpenings: NewJobOpeningRepository(tx),
		Leaves:      NewLeaveRepository(tx),
		Users:       NewUserRepository(tx),
		Permissions: NewPermissionRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
