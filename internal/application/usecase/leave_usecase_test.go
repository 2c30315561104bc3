package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

func TestLeaveCreate_AtribuidaAlActor(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	out, err := uc.Create(context.Background(), 5, dto.LeaveRequestCreate{
		EmployeeID: 12,
		LeaveType:  "Vacaciones",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.LeaveRequestID)
	assert.Equal(t, entity.LeavePending, out.Status)

	calls := runner.callsFor("leave.insert")
	require.Len(t, calls, 1)
	assert.Equal(t, 5, calls[0].actor)
}

func TestLeaveCreate_FechasInvertidas_Rechazada(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(context.Background(), 5, dto.LeaveRequestCreate{
		EmployeeID: 12,
		LeaveType:  "Vacaciones",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, -3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.calls)
}

func TestLeaveApprove_CambiaEstadoYAtribuye(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	require.NoError(t, uc.Approve(context.Background(), 9, 44))
	assert.Equal(t, entity.LeaveApproved, runner.leaves.statuses[44])

	calls := runner.callsFor("leave.status")
	require.Len(t, calls, 1)
	assert.Equal(t, 9, calls[0].actor, "la aprobación queda atribuida a quien aprobó")
}

func TestLeaveReject_CambiaEstado(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	require.NoError(t, uc.Reject(context.Background(), 9, 44))
	assert.Equal(t, entity.LeaveRejected, runner.leaves.statuses[44])
}

func TestLeaveApprove_ActorInvalido_Rechazado(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	assert.Error(t, uc.Approve(context.Background(), 0, 44),
		"ninguna mutación corre sin actor")
	assert.Empty(t, runner.calls)
}

// Aprobaciones concurrentes de actores distintos a través del MISMO pool de
// una sola conexión: cada escritura debe quedar atribuida exactamente al actor
// que la ejecutó, nunca al de otra unidad de trabajo y nunca sin actor.
func TestLeaveApprove_ActoresConcurrentesNoSeContaminan(t *testing.T) {
	runner := newFakeRunner()
	uc := usecase.NewLeaveUseCase(runner.leaves, runner)

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actorID := 100 + i
			errs[i] = uc.Approve(context.Background(), actorID, 1000+i)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	calls := runner.callsFor("leave.status")
	require.Len(t, calls, workers)
	seen := make(map[int]bool)
	for _, c := range calls {
		assert.GreaterOrEqual(t, c.actor, 100, "la mutación jamás corre sin actor atado")
		assert.False(t, seen[c.actor], "cada actor aparece exactamente una vez")
		seen[c.actor] = true
	}
}
