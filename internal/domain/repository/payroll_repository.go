package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// PayrollRepository lectura del histórico de nómina (hr.get_employee_payroll_history).
type PayrollRepository interface {
	HistoryByEmployee(ctx context.Context, employeeID int) ([]entity.Payroll, error)
}
