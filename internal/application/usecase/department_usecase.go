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

// DepartmentUseCase CRUD de departamentos. Las lecturas van directo al pool;
// toda mutación corre dentro de la sesión auditada con el actor atado.
type DepartmentUseCase struct {
	repo   repository.DepartmentRepository
	runner ports.SessionRunner
}

// NewDepartmentUseCase construye el caso de uso de departamentos.
func NewDepartmentUseCase(repo repository.DepartmentRepository, runner ports.SessionRunner) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, runner: runner}
}

// List lista todos los departamentos.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	deps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar departamentos: %w", err)
	}
	out := make([]dto.DepartmentResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, toDepartmentResponse(d))
	}
	return out, nil
}

// GetByID obtiene un departamento por id.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener departamento: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toDepartmentResponse(*d)
	return &resp, nil
}

// Create inserta un departamento atribuido al actor.
func (uc *DepartmentUseCase) Create(ctx context.Context, actorID int, in dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	d := entity.Department{Name: in.Name, ManagerID: in.ManagerID}
	err := uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		id, err := repos.Departments.Insert(ctx, &d)
		if err != nil {
			return err
		}
		d.DepartmentID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(d)
	return &resp, nil
}

// Update actualiza un departamento atribuido al actor.
func (uc *DepartmentUseCase) Update(ctx context.Context, actorID, id int, in dto.DepartmentRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	d := entity.Department{DepartmentID: id, Name: in.Name, ManagerID: in.ManagerID}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.Departments.Update(ctx, &d)
	})
}

// Delete elimina un departamento atribuido al actor.
func (uc *DepartmentUseCase) Delete(ctx context.Context, actorID, id int) error {
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.Departments.Delete(ctx, id)
	})
}

func toDepartmentResponse(d entity.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		ManagerID:    d.ManagerID,
	}
}
