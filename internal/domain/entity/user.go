package entity

import "time"

// Estados de cuenta (tabla core.user_status).
const (
	StatusActive   = 1
	StatusInactive = 2
	StatusLocked   = 3
)

// User es la identidad autenticada del sistema. La provisiona core.add_user;
// este subsistema solo la lee. Inmutable dentro de un request.
type User struct {
	UserID             int
	FullName           string
	Email              string
	RoleID             int
	RoleName           string
	StatusID           int
	CreatedAt          time.Time
	PasswordExpiryDate *time.Time // nil = sin vencimiento programado
	CreatedBy          string
	EmployeeID         *int // nil si la cuenta no está ligada a un empleado
}

// NewUser datos para provisionar una cuenta vía core.add_user.
// El password temporal se genera en el servidor; aquí solo viaja su digest.
type NewUser struct {
	FullName       string
	Email          string
	PasswordDigest []byte
	RoleID         int
	StatusID       *int // nil = default del procedimiento
	CreatedBy      int
}
