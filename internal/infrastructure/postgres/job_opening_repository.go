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

var _ repository.JobOpeningRepository = (*JobOpeningRepo)(nil)

// JobOpeningRepo vacantes sobre los procedimientos de hr.
type JobOpeningRepo struct {
	db Querier
}

// NewJobOpeningRepository construye el adaptador de vacantes.
func NewJobOpeningRepository(db Querier) *JobOpeningRepo {
	return &JobOpeningRepo{db: db}
}

const jobOpeningColumns = `job_opening_id, title, department_id, location, status, posted_date, closing_date, job_description`

// List lista todas las vacantes.
func (r *JobOpeningRepo) List(ctx context.Context) ([]entity.JobOpening, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobOpeningColumns+` FROM hr.get_all_job_openings()`)
	if err != nil {
		return nil, fmt.Errorf("hr.get_all_job_openings: %w", err)
	}
	defer rows.Close()

	var jobs []entity.JobOpening
	for rows.Next() {
		var j entity.JobOpening
		if err := rows.Scan(
			&j.JobOpeningID, &j.Title, &j.DepartmentID, &j.Location, &j.Status,
			&j.PostedDate, &j.ClosingDate, &j.JobDescription,
		); err != nil {
			return nil, fmt.Errorf("scan vacante: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetByID obtiene una vacante; nil si no existe.
func (r *JobOpeningRepo) GetByID(ctx context.Context, id int) (*entity.JobOpening, error) {
	var j entity.JobOpening
	err := r.db.QueryRow(ctx,
		`SELECT `+jobOpeningColumns+` FROM hr.get_job_opening_by_id($1)`, id,
	).Scan(
		&j.JobOpeningID, &j.Title, &j.DepartmentID, &j.Location, &j.Status,
		&j.PostedDate, &j.ClosingDate, &j.JobDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("hr.get_job_opening_by_id: %w", err)
	}
	return &j, nil
}

// Insert crea una vacante vía hr.insert_job_opening.
func (r *JobOpeningRepo) Insert(ctx context.Context, j *entity.JobOpening) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`SELECT hr.insert_job_opening($1, $2, $3, $4, $5)`,
		j.Title, j.DepartmentID, j.Location, j.ClosingDate, j.JobDescription,
	).Scan(&id)
	if err != nil {
		if isRaisedByProcedure(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return 0, fmt.Errorf("hr.insert_job_opening: %w", err)
	}
	return id, nil
}

// Update actualiza una vacante vía hr.update_job_opening.
func (r *JobOpeningRepo) Update(ctx context.Context, j *entity.JobOpening) error {
	_, err := r.db.Exec(ctx,
		`CALL hr.update_job_opening($1, $2, $3, $4, $5, $6)`,
		j.JobOpeningID, j.Title, j.DepartmentID, j.Location, j.ClosingDate, j.JobDescription,
	)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("hr.update_job_opening: %w", err)
	}
	return nil
}

// Delete elimina una vacante vía hr.delete_job_opening.
func (r *JobOpeningRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `CALL hr.delete_job_opening($1)`, id)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("hr.delete_job_opening: %w", err)
	}
	return nil
}
