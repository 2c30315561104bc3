package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentRequest alta/actualización de un departamento.
type DepartmentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	ManagerID *int   `json:"manager_id"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	ManagerID    *int   `json:"manager_id,omitempty"`
}

// JobOpeningRequest alta/actualización de una vacante.
type JobOpeningRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	DepartmentID   *int       `json:"department_id"`
	Location       string     `json:"location"`
	ClosingDate    *time.Time `json:"closing_date"`
	JobDescription string     `json:"job_description"`
}

// JobOpeningResponse salida de una vacante.
type JobOpeningResponse struct {
	JobOpeningID   int        `json:"job_opening_id"`
	Title          string     `json:"title"`
	DepartmentID   *int       `json:"department_id,omitempty"`
	Location       string     `json:"location"`
	Status         string     `json:"status"`
	PostedDate     *time.Time `json:"posted_date,omitempty"`
	ClosingDate    *time.Time `json:"closing_date,omitempty"`
	JobDescription string     `json:"job_description"`
}

// LeaveRequestCreate alta de solicitud de licencia.
type LeaveRequestCreate struct {
	EmployeeID int       `json:"employee_id" validate:"required,min=1"`
	LeaveType  string    `json:"leave_type" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// LeaveRequestResponse salida de una solicitud de licencia.
type LeaveRequestResponse struct {
	LeaveRequestID int       `json:"leave_request_id"`
	EmployeeID     int       `json:"employee_id"`
	LeaveType      string    `json:"leave_type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
}

// PayrollResponse fila del histórico de nómina. Montos con precisión decimal.
type PayrollResponse struct {
	PayrollID   int             `json:"payroll_id"`
	EmployeeID  int             `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

// AuditLogResponse fila del log de auditoría.
type AuditLogResponse struct {
	AuditID         int       `json:"audit_id"`
	TableName       string    `json:"table_name"`
	PrimaryKeyValue int       `json:"primary_key_value"`
	ActionType      string    `json:"action_type"`
	ActionDate      time.Time `json:"action_date"`
	UserID          int       `json:"user_id"`
	RoleName        string    `json:"role_name,omitempty"`
	EmployeeName    string    `json:"employee_name,omitempty"`
}
