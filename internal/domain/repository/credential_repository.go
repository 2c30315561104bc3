package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// CredentialRepository verifica credenciales contra core.login_user (DIP).
//
// La comparación es digest contra digest y la hace el procedimiento; la
// aplicación nunca envía ni compara texto plano. Un solo round trip devuelve
// la identidad y sus nombres de permiso.
type CredentialRepository interface {
	// VerifyCredentials devuelve (identidad, permisos, nil) si hay exactamente
	// una coincidencia. Sin coincidencia o con coincidencias ambiguas devuelve
	// (nil, nil, nil): el caso de uso lo colapsa a credenciales inválidas.
	// Un error no nulo es SIEMPRE un fallo de infraestructura, nunca "password
	// incorrecto".
	VerifyCredentials(ctx context.Context, email string, passwordDigest []byte) (*entity.User, []string, error)
}
