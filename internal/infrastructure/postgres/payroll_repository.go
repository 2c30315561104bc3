package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo histórico de nómina. Los montos NUMERIC llegan como
// shopspring/decimal gracias al codec registrado en el pool.
type PayrollRepo struct {
	db Querier
}

// NewPayrollRepository construye el adaptador de nómina.
func NewPayrollRepository(db Querier) *PayrollRepo {
	return &PayrollRepo{db: db}
}

// HistoryByEmployee devuelve las liquidaciones de un empleado.
func (r *PayrollRepo) HistoryByEmployee(ctx context.Context, employeeID int) ([]entity.Payroll, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payroll_id, employee_id, month, year, basic_salary, allowances, deductions
		 FROM hr.get_employee_payroll_history($1)`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("hr.get_employee_payroll_history: %w", err)
	}
	defer rows.Close()

	var items []entity.Payroll
	for rows.Next() {
		var p entity.Payroll
		if err := rows.Scan(&p.PayrollID, &p.EmployeeID, &p.Month, &p.Year, &p.BasicSalary, &p.Allowances, &p.Deductions); err != nil {
			return nil, fmt.Errorf("scan nómina: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
