package entity

import "time"

// Estados válidos de una vacante.
const (
	JobOpeningOpen   = "Open"
	JobOpeningClosed = "Closed"
	JobOpeningOnHold = "OnHold"
)

// JobOpening vacante publicada (tabla hr.job_opening).
type JobOpening struct {
	JobOpeningID   int
	Title          string
	DepartmentID   *int
	Location       string
	Status         string // ver constantes JobOpening*
	PostedDate     *time.Time
	ClosingDate    *time.Time
	JobDescription string
}
