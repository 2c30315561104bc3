package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// PayrollUseCase lectura del histórico de nómina (solo lectura: la liquidación
// vive en procedimientos de la base).
type PayrollUseCase struct {
	repo repository.PayrollRepository
}

// NewPayrollUseCase construye el caso de uso de nómina.
func NewPayrollUseCase(repo repository.PayrollRepository) *PayrollUseCase {
	return &PayrollUseCase{repo: repo}
}

// HistoryByEmployee devuelve las liquidaciones de un empleado.
func (uc *PayrollUseCase) HistoryByEmployee(ctx context.Context, employeeID int) ([]dto.PayrollResponse, error) {
	if employeeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.HistoryByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("histórico de nómina: %w", err)
	}
	out := make([]dto.PayrollResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.PayrollResponse{
			PayrollID:   p.PayrollID,
			EmployeeID:  p.EmployeeID,
			Month:       p.Month,
			Year:        p.Year,
			BasicSalary: p.BasicSalary,
			Allowances:  p.Allowances,
			Deductions:  p.Deductions,
			NetSalary:   p.NetSalary(),
		})
	}
	return out, nil
}
