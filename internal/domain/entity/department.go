package entity

// Department departamento de la organización (tabla hr.department).
type Department struct {
	DepartmentID int
	Name         string
	ManagerID    *int // nil = sin gerente asignado
}
