package entity

import "time"

// Estados de una solicitud de licencia.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// LeaveRequest solicitud de licencia/vacaciones (tabla hr.leave_request).
type LeaveRequest struct {
	LeaveRequestID int
	EmployeeID     int
	LeaveType      string
	StartDate      time.Time
	EndDate        time.Time
	Status         string // ver constantes Leave*
}
