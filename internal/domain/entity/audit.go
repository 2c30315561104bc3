package entity

import "time"

// AuditLogEntry fila del log de auditoría (hr.audit_log). Las escriben triggers
// en la base leyendo el actor del session context; la aplicación solo las lee.
type AuditLogEntry struct {
	AuditID         int
	TableName       string
	PrimaryKeyValue int
	ActionType      string // INSERT, UPDATE, DELETE
	ActionDate      time.Time
	UserID          int
	RoleName        string
	EmployeeName    string
}
