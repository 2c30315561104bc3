package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// DepartmentRepository puerto de persistencia para departamentos (DIP).
// Las mutaciones se ejecutan dentro de una sesión auditada (SessionRunner).
type DepartmentRepository interface {
	List(ctx context.Context) ([]entity.Department, error)
	GetByID(ctx context.Context, id int) (*entity.Department, error)
	Insert(ctx context.Context, d *entity.Department) (int, error)
	Update(ctx context.Context, d *entity.Department) error
	Delete(ctx context.Context, id int) error
}
