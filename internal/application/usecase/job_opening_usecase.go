package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// JobOpeningUseCase CRUD de vacantes con mutaciones auditadas.
type JobOpeningUseCase struct {
	repo   repository.JobOpeningRepository
	runner ports.SessionRunner
}

// NewJobOpeningUseCase construye el caso de uso de vacantes.
func NewJobOpeningUseCase(repo repository.JobOpeningRepository, runner ports.SessionRunner) *JobOpeningUseCase {
	return &JobOpeningUseCase{repo: repo, runner: runner}
}

// List lista todas las vacantes.
func (uc *JobOpeningUseCase) List(ctx context.Context) ([]dto.JobOpeningResponse, error) {
	jobs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar vacantes: %w", err)
	}
	out := make([]dto.JobOpeningResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobOpeningResponse(j))
	}
	return out, nil
}

// GetByID obtiene una vacante por id.
func (uc *JobOpeningUseCase) GetByID(ctx context.Context, id int) (*dto.JobOpeningResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	j, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener vacante: %w", err)
	}
	if j == nil {
		return nil, domain.ErrNotFound
	}
	resp := toJobOpeningResponse(*j)
	return &resp, nil
}

// Create inserta una vacante atribuida al actor (hr.insert_job_opening).
func (uc *JobOpeningUseCase) Create(ctx context.Context, actorID int, in dto.JobOpeningRequest) (*dto.JobOpeningResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	j := entity.JobOpening{
		Title:          in.Title,
		DepartmentID:   in.DepartmentID,
		Location:       in.Location,
		Status:         entity.JobOpeningOpen,
		ClosingDate:    in.ClosingDate,
		JobDescription: in.JobDescription,
	}
	err := uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		id, err := repos.JobOpenings.Insert(ctx, &j)
		if err != nil {
			return err
		}
		j.JobOpeningID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toJobOpeningResponse(j)
	return &resp, nil
}

// Update actualiza una vacante atribuida al actor.
func (uc *JobOpeningUseCase) Update(ctx context.Context, actorID, id int, in dto.JobOpeningRequest) error {
	if id <= 0 || in.Title == "" {
		return domain.ErrInvalidInput
	}
	j := entity.JobOpening{
		JobOpeningID:   id,
		Title:          in.Title,
		DepartmentID:   in.DepartmentID,
		Location:       in.Location,
		ClosingDate:    in.ClosingDate,
		JobDescription: in.JobDescription,
	}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.JobOpenings.Update(ctx, &j)
	})
}

// Delete elimina una vacante atribuida al actor.
func (uc *JobOpeningUseCase) Delete(ctx context.Context, actorID, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.JobOpenings.Delete(ctx, id)
	})
}

func toJobOpeningResponse(j entity.JobOpening) dto.JobOpeningResponse {
	return dto.JobOpeningResponse{
		JobOpeningID:   j.JobOpeningID,
		Title:          j.Title,
		DepartmentID:   j.DepartmentID,
		Location:       j.Location,
		Status:         j.Status,
		PostedDate:     j.PostedDate,
		ClosingDate:    j.ClosingDate,
		JobDescription: j.JobDescription,
	}
}
