package entity

import "github.com/shopspring/decimal"

// Payroll liquidación de nómina de un empleado para un período (tabla hr.payroll).
// Los montos son NUMERIC en la base: se mapean a decimal para no perder precisión.
type Payroll struct {
	PayrollID   int
	EmployeeID  int
	Month       int
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
}

// NetSalary salario neto = básico + auxilios - deducciones.
func (p Payroll) NetSalary() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances).Sub(p.Deductions)
}
