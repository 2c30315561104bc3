package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// LeaveRepository puerto de persistencia para solicitudes de licencia (DIP).
type LeaveRepository interface {
	ListByEmployee(ctx context.Context, employeeID int) ([]entity.LeaveRequest, error)
	Insert(ctx context.Context, l *entity.LeaveRequest) (int, error)
	// UpdateStatus aprueba o rechaza una solicitud (hr.approve_leave_request).
	UpdateStatus(ctx context.Context, leaveRequestID int, status string) error
}
