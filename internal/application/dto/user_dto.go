package dto

// AddUserRequest entrada para provisionar una cuenta. El password temporal se
// genera en el servidor y se envía por correo; nunca lo elige el cliente.
type AddUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	RoleID   int    `json:"role_id" validate:"required,min=1"`
	StatusID *int   `json:"status_id" validate:"omitempty,min=1"`
}

// AddUserResponse salida de la provisión de cuenta.
type AddUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

// RolePermissionRequest otorga o actualiza un permiso de rol.
type RolePermissionRequest struct {
	RoleID       int `json:"role_id" validate:"required,min=1"`
	PermissionID int `json:"permission_id" validate:"required,min=1"`
}
