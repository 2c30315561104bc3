package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrCredencialesInvalidas cubre tanto email desconocido como password
	// incorrecto: el caller nunca debe poder distinguirlos (anti enumeración).
	ErrCredencialesInvalidas = errors.New("email o contraseña inválidos")

	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
