package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

// LeaveRepo solicitudes de licencia sobre los procedimientos de hr.
type LeaveRepo struct {
	db Querier
}

// NewLeaveRepository construye el adaptador de licencias.
func NewLeaveRepository(db Querier) *LeaveRepo {
	return &LeaveRepo{db: db}
}

// ListByEmployee lista las solicitudes de un empleado.
func (r *LeaveRepo) ListByEmployee(ctx context.Context, employeeID int) ([]entity.LeaveRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT leave_request_id, employee_id, leave_type, start_date, end_date, status
		 FROM hr.get_leave_requests_by_employee($1)`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("hr.get_leave_requests_by_employee: %w", err)
	}
	defer rows.Close()

	var reqs []entity.LeaveRequest
	for rows.Next() {
		var l entity.LeaveRequest
		if err := rows.Scan(&l.LeaveRequestID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Status); err != nil {
			return nil, fmt.Errorf("scan licencia: %w", err)
		}
		reqs = append(reqs, l)
	}
	return reqs, rows.Err()
}

// Insert registra una solicitud vía hr.add_leave_request.
func (r *LeaveRepo) Insert(ctx context.Context, l *entity.LeaveRequest) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`SELECT hr.add_leave_request($1, $2, $3, $4)`,
		l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate,
	).Scan(&id)
	if err != nil {
		if isRaisedByProcedure(err) {
			// El procedimiento valida saldo y solapamientos
			return 0, fmt.Errorf("%w: %s", domain.ErrConflict, err.Error())
		}
		return 0, fmt.Errorf("hr.add_leave_request: %w", err)
	}
	return id, nil
}

// UpdateStatus aprueba o rechaza una solicitud vía hr.approve_leave_request.
func (r *LeaveRepo) UpdateStatus(ctx context.Context, leaveRequestID int, status string) error {
	_, err := r.db.Exec(ctx, `CALL hr.approve_leave_request($1, $2)`, leaveRequestID, status)
	if err != nil {
		if isRaisedByProcedure(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("hr.approve_leave_request: %w", err)
	}
	return nil
}
