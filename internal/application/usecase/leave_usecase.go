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

// LeaveUseCase solicitudes de licencia. La aprobación es la mutación auditada
// por excelencia: el trigger registra qué usuario aprobó qué solicitud.
type LeaveUseCase struct {
	repo   repository.LeaveRepository
	runner ports.SessionRunner
}

// NewLeaveUseCase construye el caso de uso de licencias.
func NewLeaveUseCase(repo repository.LeaveRepository, runner ports.SessionRunner) *LeaveUseCase {
	return &LeaveUseCase{repo: repo, runner: runner}
}

// ListByEmployee lista las solicitudes de un empleado.
func (uc *LeaveUseCase) ListByEmployee(ctx context.Context, employeeID int) ([]dto.LeaveRequestResponse, error) {
	if employeeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	reqs, err := uc.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("listar licencias: %w", err)
	}
	out := make([]dto.LeaveRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toLeaveResponse(r))
	}
	return out, nil
}

// Create registra una solicitud de licencia atribuida al actor.
func (uc *LeaveUseCase) Create(ctx context.Context, actorID int, in dto.LeaveRequestCreate) (*dto.LeaveRequestResponse, error) {
	if in.EmployeeID <= 0 || in.LeaveType == "" || in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	l := entity.LeaveRequest{
		EmployeeID: in.EmployeeID,
		LeaveType:  in.LeaveType,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     entity.LeavePending,
	}
	err := uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		id, err := repos.Leaves.Insert(ctx, &l)
		if err != nil {
			return err
		}
		l.LeaveRequestID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toLeaveResponse(l)
	return &resp, nil
}

// Approve marca la solicitud como aprobada, atribuida al actor.
func (uc *LeaveUseCase) Approve(ctx context.Context, actorID, leaveRequestID int) error {
	return uc.setStatus(ctx, actorID, leaveRequestID, entity.LeaveApproved)
}

// Reject marca la solicitud como rechazada, atribuida al actor.
func (uc *LeaveUseCase) Reject(ctx context.Context, actorID, leaveRequestID int) error {
	return uc.setStatus(ctx, actorID, leaveRequestID, entity.LeaveRejected)
}

func (uc *LeaveUseCase) setStatus(ctx context.Context, actorID, leaveRequestID int, status string) error {
	if leaveRequestID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		return repos.Leaves.UpdateStatus(ctx, leaveRequestID, status)
	})
}

func toLeaveResponse(l entity.LeaveRequest) dto.LeaveRequestResponse {
	return dto.LeaveRequestResponse{
		LeaveRequestID: l.LeaveRequestID,
		EmployeeID:     l.EmployeeID,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		Status:         l.Status,
	}
}
