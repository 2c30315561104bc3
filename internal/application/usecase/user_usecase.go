package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/password"
)

// UserUseCase provisión y consulta de cuentas de usuario.
type UserUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	runner    ports.SessionRunner
	email     ports.EmailService
	log       *logger.Logger
}

// NewUserUseCase construye el caso de uso de cuentas.
func NewUserUseCase(
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	runner ports.SessionRunner,
	email ports.EmailService,
	log *logger.Logger,
) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditRepo: auditRepo, runner: runner, email: email, log: log}
}

// AddUser provisiona una cuenta: genera un password temporal en el servidor,
// persiste su digest vía core.add_user dentro de una sesión auditada con el
// actor atado, y envía las credenciales por correo. El fallo del correo no
// revierte la creación: la cuenta ya existe y el admin puede reenviar.
func (uc *UserUseCase) AddUser(ctx context.Context, actorID int, in dto.AddUserRequest) (*dto.AddUserResponse, error) {
	if in.FullName == "" || in.Email == "" || in.RoleID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	tempPassword, err := password.GenerateTemporary()
	if err != nil {
		return nil, fmt.Errorf("generar password temporal: %w", err)
	}

	newUser := &entity.NewUser{
		FullName:       in.FullName,
		Email:          in.Email,
		PasswordDigest: password.Digest(tempPassword),
		RoleID:         in.RoleID,
		StatusID:       in.StatusID,
		CreatedBy:      actorID,
	}

	var userID int
	err = uc.runner.RunAsUser(ctx, actorID, func(repos ports.MutationRepos) error {
		id, err := repos.Users.Add(ctx, newUser)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	subject := "Credenciales de tu nueva cuenta"
	plain := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta fue creada. Tu password temporal es: %s\n\nVence en 3 meses; ingresa y cámbialo lo antes posible.\n\nEquipo Talento HR",
		in.FullName, tempPassword,
	)
	html := fmt.Sprintf(
		"<p>Hola <strong>%s</strong>,</p><p>Tu cuenta fue creada. Tu password temporal es:</p><h3><strong>%s</strong></h3><p>Vence en 3 meses; ingresa y cámbialo lo antes posible.</p><p>Equipo Talento HR</p>",
		in.FullName, tempPassword,
	)
	if err := uc.email.Send(ctx, in.Email, subject, plain, html); err != nil {
		uc.log.Warn().Err(err).Str("email", in.Email).Msg("no se pudo enviar el correo de bienvenida")
	}

	return &dto.AddUserResponse{
		Success: true,
		Message: "usuario creado; credenciales enviadas por correo",
		UserID:  userID,
	}, nil
}

// List lista las cuentas existentes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		u := users[i]
		out = append(out, dto.UserResponse{
			UserID:             u.UserID,
			FullName:           u.FullName,
			Email:              u.Email,
			RoleID:             u.RoleID,
			RoleName:           u.RoleName,
			StatusID:           u.StatusID,
			CreatedAt:          u.CreatedAt,
			PasswordExpiryDate: u.PasswordExpiryDate,
			EmployeeID:         u.EmployeeID,
		})
	}
	return out, nil
}

// AuditLog devuelve el log de auditoría completo (quién cambió qué y cuándo).
func (uc *UserUseCase) AuditLog(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := uc.auditRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar audit log: %w", err)
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{
			AuditID:         e.AuditID,
			TableName:       e.TableName,
			PrimaryKeyValue: e.PrimaryKeyValue,
			ActionType:      e.ActionType,
			ActionDate:      e.ActionDate,
			UserID:          e.UserID,
			RoleName:        e.RoleName,
			EmployeeName:    e.EmployeeName,
		})
	}
	return out, nil
}
