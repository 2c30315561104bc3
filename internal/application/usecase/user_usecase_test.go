package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

func newUserUC(runner *fakeRunner, mail *fakeEmail, audit *fakeAuditRepo) *usecase.UserUseCase {
	if audit == nil {
		audit = &fakeAuditRepo{}
	}
	return usecase.NewUserUseCase(runner.users, audit, runner, mail, testLogger())
}

func TestAddUser_ProvisionaYEnviaCorreo(t *testing.T) {
	runner := newFakeRunner()
	mail := &fakeEmail{}
	uc := newUserUC(runner, mail, nil)

	out, err := uc.AddUser(context.Background(), 3, dto.AddUserRequest{
		FullName: "Laura Gómez",
		Email:    "laura.gomez@example.com",
		RoleID:   2,
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.UserID)

	// La cuenta se persistió con digest, nunca con el password en claro
	require.Len(t, runner.users.added, 1)
	stored := runner.users.added[0]
	assert.Len(t, stored.PasswordDigest, 32, "se almacena el digest SHA-256")
	assert.Equal(t, 3, stored.CreatedBy)

	// El correo lleva el password temporal en claro (única vez que existe fuera
	// del servidor) y el digest almacenado corresponde a ese password
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "laura.gomez@example.com", mail.sent[0].to)
	assert.NotEmpty(t, mail.sent[0].plain)

	// La escritura quedó atribuida al actor
	calls := runner.callsFor("user.add")
	require.Len(t, calls, 1)
	assert.Equal(t, 3, calls[0].actor)
}

func TestAddUser_FalloDeCorreo_NoRevierteLaCuenta(t *testing.T) {
	runner := newFakeRunner()
	mail := &fakeEmail{err: errors.New("sendgrid 503")}
	uc := newUserUC(runner, mail, nil)

	out, err := uc.AddUser(context.Background(), 3, dto.AddUserRequest{
		FullName: "Laura Gómez",
		Email:    "laura.gomez@example.com",
		RoleID:   2,
	})
	require.NoError(t, err, "el fallo del correo no debe revertir la creación")
	assert.True(t, out.Success)
	assert.Len(t, runner.users.added, 1)
}

func TestAddUser_EntradaInvalida_NoTocaElRunner(t *testing.T) {
	runner := newFakeRunner()
	uc := newUserUC(runner, &fakeEmail{}, nil)

	for _, in := range []dto.AddUserRequest{
		{FullName: "", Email: "a@b.com", RoleID: 1},
		{FullName: "Ana", Email: "", RoleID: 1},
		{FullName: "Ana", Email: "a@b.com", RoleID: 0},
	} {
		_, err := uc.AddUser(context.Background(), 3, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, runner.calls, "la entrada inválida no debe abrir sesión auditada")
}

func TestAddUser_FalloDeBinding_NoEjecutaLaMutacion(t *testing.T) {
	runner := newFakeRunner()
	runner.bindErr = errors.New("atar actor a la sesión: conexión perdida")
	mail := &fakeEmail{}
	uc := newUserUC(runner, mail, nil)

	_, err := uc.AddUser(context.Background(), 3, dto.AddUserRequest{
		FullName: "Laura Gómez",
		Email:    "laura.gomez@example.com",
		RoleID:   2,
	})
	require.Error(t, err)
	assert.Empty(t, runner.users.added, "sin binding no se escribe nada")
	assert.Empty(t, mail.sent, "sin cuenta no hay correo")
}

func TestAddUser_EmailDuplicado_Propaga(t *testing.T) {
	runner := newFakeRunner()
	runner.users.addErr = domain.ErrEmailAlreadyExists
	uc := newUserUC(runner, &fakeEmail{}, nil)

	_, err := uc.AddUser(context.Background(), 3, dto.AddUserRequest{
		FullName: "Laura Gómez",
		Email:    "laura.gomez@example.com",
		RoleID:   2,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestListUsers_Mapea(t *testing.T) {
	runner := newFakeRunner()
	runner.users.users = []entity.User{
		{UserID: 1, FullName: "Ana", Email: "ana@b.com", RoleID: 1, RoleName: "Admin", StatusID: 1, CreatedAt: time.Now()},
		{UserID: 2, FullName: "Beto", Email: "beto@b.com", RoleID: 2, RoleName: "Recruiter", StatusID: 2, CreatedAt: time.Now()},
	}
	uc := newUserUC(runner, &fakeEmail{}, nil)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Admin", out[0].RoleName)
	assert.Equal(t, 2, out[1].UserID)
}

func TestAuditLog_Mapea(t *testing.T) {
	runner := newFakeRunner()
	audit := &fakeAuditRepo{entries: []entity.AuditLogEntry{
		{AuditID: 10, TableName: "leave_requests", PrimaryKeyValue: 4, ActionType: "UPDATE", ActionDate: time.Now(), UserID: 3, RoleName: "HR Manager"},
	}}
	uc := newUserUC(runner, &fakeEmail{}, audit)

	out, err := uc.AuditLog(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "leave_requests", out[0].TableName)
	assert.Equal(t, 3, out[0].UserID)
}
