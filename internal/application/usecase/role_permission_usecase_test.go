package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
)

func TestGrant_RegistraOtorganteYAtribuye(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewRolePermissionUseCase(runner)

	err := uc.Grant(context.Background(), 3, dto.RolePermissionRequest{RoleID: 2, PermissionID: 7})
	require.NoError(t, err)

	require.Len(t, runner.permissions.grants, 1)
	g := runner.permissions.grants[0]
	assert.Equal(t, 2, g.roleID)
	assert.Equal(t, 7, g.permissionID)
	assert.Equal(t, 3, g.grantedBy, "el otorgante es el actor autenticado")

	calls := runner.callsFor("permission.grant")
	require.Len(t, calls, 1)
	assert.Equal(t, 3, calls[0].actor)
}

func TestRevoke_Atribuido(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewRolePermissionUseCase(runner)

	err := uc.Revoke(context.Background(), 3, dto.RolePermissionRequest{RoleID: 2, PermissionID: 7})
	require.NoError(t, err)

	require.Len(t, runner.permissions.revokes, 1)
	calls := runner.callsFor("permission.revoke")
	require.Len(t, calls, 1)
	assert.Equal(t, 3, calls[0].actor)
}

func TestGrantRevoke_EntradaInvalida(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewRolePermissionUseCase(runner)

	for _, in := range []dto.RolePermissionRequest{
		{RoleID: 0, PermissionID: 7},
		{RoleID: 2, PermissionID: 0},
	} {
		assert.ErrorIs(t, uc.Grant(context.Background(), 3, in), domain.ErrInvalidInput)
		assert.ErrorIs(t, uc.Revoke(context.Background(), 3, in), domain.ErrInvalidInput)
	}
	assert.Empty(t, runner.calls)
}
