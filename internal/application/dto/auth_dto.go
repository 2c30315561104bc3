package dto

import "time"

// LoginRequest entrada para login (email + password en texto plano; el password
// solo vive lo que dura la verificación, nunca se persiste ni se loggea).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse resumen de la identidad autenticada (sin material de password).
type UserResponse struct {
	UserID             int        `json:"user_id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	RoleID             int        `json:"role_id"`
	RoleName           string     `json:"role_name"`
	StatusID           int        `json:"status_id"`
	CreatedAt          time.Time  `json:"created_at"`
	PasswordExpiryDate *time.Time `json:"password_expiry_date,omitempty"`
	EmployeeID         *int       `json:"employee_id,omitempty"`
}

// LoginResponse salida del login: token firmado, resumen de identidad y la
// lista de permisos vigente al momento del login (informativa; las decisiones
// de autorización posteriores se re-resuelven por request).
type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"user"`
	Permissions []string     `json:"permissions"`
}

// PermissionsResponse permisos efectivos del usuario autenticado.
type PermissionsResponse struct {
	UserID      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
}
