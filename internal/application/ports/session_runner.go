package ports

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// MutationRepos repositorios atados a la transacción auditada en curso.
// Solo son válidos dentro del callback de RunAsUser.
type MutationRepos struct {
	Departments repository.DepartmentRepository
	JobOpenings repository.JobOpeningRepository
	Leaves      repository.LeaveRepository
	Users       repository.UserRepository
	Permissions repository.PermissionRepository
}

// SessionRunner ejecuta una unidad de trabajo mutante con el actor atado a la
// sesión de base de datos, para que los triggers de auditoría puedan atribuir
// cada escritura sin pasar el UserID por cada firma.
//
// Garantías del contrato:
//   - el binding del actor se establece ANTES de ejecutar fn y queda limitado
//     a la transacción: al terminar (commit o rollback) no sobrevive en la
//     conexión devuelta al pool;
//   - cada unidad de trabajo usa su propia conexión; dos requests concurrentes
//     nunca comparten binding;
//   - si el binding falla, fn no se ejecuta: ninguna mutación corre sin actor.
type SessionRunner interface {
	RunAsUser(ctx context.Context, userID int, fn func(repos MutationRepos) error) error
}
