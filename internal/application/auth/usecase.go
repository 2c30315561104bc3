package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
	"github.com/jhoicas/Talento-api/pkg/password"
)

// AuthUseCase casos de uso de autenticación: login y consulta de permisos.
type AuthUseCase struct {
	credRepo repository.CredentialRepository
	permRepo repository.PermissionRepository
	jwtCfg   pkgjwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credRepo repository.CredentialRepository, permRepo repository.PermissionRepository, jwtCfg pkgjwt.Config) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, permRepo: permRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra core.login_user y emite el JWT.
//
// Cualquier causa de rechazo de credenciales (email desconocido, password
// incorrecto, resultado ambiguo, cuenta no activa) colapsa en
// domain.ErrCredencialesInvalidas: el caller no puede enumerar cuentas.
// Los fallos de infraestructura se propagan con detalle, nunca se degradan
// a credenciales inválidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	digest := password.Digest(in.Password)
	user, permissions, err := uc.credRepo.VerifyCredentials(ctx, email, digest)
	if err != nil {
		return nil, fmt.Errorf("verificar credenciales: %w", err)
	}
	if user == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if user.StatusID != entity.StatusActive {
		return nil, domain.ErrCredencialesInvalidas
	}

	token, err := pkgjwt.Generate(uc.jwtCfg, pkgjwt.Identity{
		UserID:   user.UserID,
		FullName: user.FullName,
		Email:    user.Email,
		RoleName: user.RoleName,
		RoleID:   user.RoleID,
		StatusID: user.StatusID,
	})
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	if permissions == nil {
		permissions = []string{}
	}
	return &dto.LoginResponse{
		Token:       token,
		User:        toUserResponse(user),
		Permissions: permissions,
	}, nil
}

// Permissions resuelve el set de permisos vigente del usuario consultando la
// base en cada llamada. Un cambio de permisos surte efecto en la siguiente
// llamada sin re-login; por eso los permisos no viajan en el token.
func (uc *AuthUseCase) Permissions(ctx context.Context, userID int) ([]string, error) {
	perms, err := uc.permRepo.PermissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolver permisos: %w", err)
	}
	if perms == nil {
		perms = []string{}
	}
	return perms, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:             u.UserID,
		FullName:           u.FullName,
		Email:              u.Email,
		RoleID:             u.RoleID,
		RoleName:           u.RoleName,
		StatusID:           u.StatusID,
		CreatedAt:          u.CreatedAt,
		PasswordExpiryDate: u.PasswordExpiryDate,
		EmployeeID:         u.EmployeeID,
	}
}
