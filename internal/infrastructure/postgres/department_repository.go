package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo departamentos sobre los procedimientos de hr.
type DepartmentRepo struct {
	db Querier
}

// NewDepartmentRepository construye el adaptador de departamentos.
func NewDepartmentRepository(db Querier) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// List lista todos los departamentos.
func (r *DepartmentRepo) List(ctx context.Context) ([]entity.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT department_id, name, manager_id FROM hr.get_all_departments()`)
	if err != nil {
		return nil, fmt.Errorf("hr.get_all_departments: %w", err)
	}
	defer rows.Close()

	var deps []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name, &d.ManagerID); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

// GetByID obtiene un departamento; nil si no existe.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int) (*entity.Department, error) {
	var d entity.Department
	err := r.db.QueryRow(ctx,
		`SELECT department_id, name, manager_id FROM hr.get_department_by_id($1)`, id,
	).Scan(&d.DepartmentID, &d.Name, &d.ManagerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("hr.get_department_by_id: %w", err)
	}
	return &d, nil
}

// Insert crea un departamento vía hr.insert_department.
func (r *DepartmentRepo) Insert(ctx context.Context, d *entity.Department) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT hr.insert_department($1, $2)`, d.Name, d.ManagerID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("hr.insert_department: %w", err)
	}
	return id, nil
}

// Update actualiza un departamento vía hr.update_department.
func (r *DepartmentRepo) Update(ctx context.Context, d *entity.Department) error {
	_, err := r.db.Exec(ctx, `CALL hr.update_department($1, $2, $3)`, d.DepartmentID, d.Name, d.ManagerID)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("hr.update_department: %w", err)
	}
	return nil
}

// Delete elimina un departamento vía hr.delete_department.
func (r *DepartmentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `CALL hr.delete_department($1)`, id)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrConflict // tiene empleados o vacantes asociadas
		}
		return fmt.Errorf("hr.delete_department: %w", err)
	}
	return nil
}
