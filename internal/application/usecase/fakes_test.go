package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes compartidos por los tests de casos de uso.
//
// fakeRunner imita el contrato del SessionRunner con un pool de UNA conexión:
// las unidades de trabajo se serializan con un mutex y el actor queda atado
// solo mientras corre fn. Cada mutación registra el actor vigente al momento
// de ejecutarse, lo que permite verificar que ninguna escritura corre sin
// atribución y que actores concurrentes no se contaminan entre sí.
// ──────────────────────────────────────────────────────────────────────────────

type auditedCall struct {
	actor int
	op    string
}

type fakeRunner struct {
	mu      sync.Mutex
	current int // actor atado; 0 = sin binding
	bindErr error
	fnErr   error // fallo inyectado dentro de fn (simula rollback)

	calls []auditedCall

	users       *fakeUserRepo
	leaves      *fakeLeaveRepo
	departments *fakeDepartmentRepo
	jobs        *fakeJobOpeningRepo
	permissions *fakePermissionRepo
}

func newFakeRunner() *fakeRunner {
	r := &fakeRunner{}
	r.users = &fakeUserRepo{runner: r}
	r.leaves = &fakeLeaveRepo{runner: r}
	r.departments = &fakeDepartmentRepo{runner: r}
	r.jobs = &fakeJobOpeningRepo{runner: r}
	r.permissions = &fakePermissionRepo{runner: r}
	return r
}

func (r *fakeRunner) RunAsUser(_ context.Context, userID int, fn func(repos ports.MutationRepos) error) error {
	if userID <= 0 {
		return fmt.Errorf("session runner: userID inválido %d", userID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bindErr != nil {
		// El binding falló: fn no se ejecuta, nada se escribe sin actor.
		return r.bindErr
	}
	r.current = userID
	defer func() { r.current = 0 }() // el binding no sobrevive la unidad de trabajo

	if err := fn(ports.MutationRepos{
		Users:       r.users,
		Leaves:      r.leaves,
		Departments: r.departments,
		JobOpenings: r.jobs,
		Permissions: r.permissions,
	}); err != nil {
		return err
	}
	return r.fnErr
}

// record registra una mutación con el actor atado al momento de ejecutarla.
func (r *fakeRunner) record(op string) {
	r.calls = append(r.calls, auditedCall{actor: r.current, op: op})
}

// callsFor devuelve las mutaciones registradas para un op dado.
func (r *fakeRunner) callsFor(op string) []auditedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []auditedCall
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// ── Repos ────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	runner  *fakeRunner
	nextID  int
	added   []entity.NewUser
	users   []entity.User
	addErr  error
	listErr error
}

func (f *fakeUserRepo) Add(_ context.Context, u *entity.NewUser) (int, error) {
	f.runner.record("user.add")
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.added = append(f.added, *u)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

type fakeLeaveRepo struct {
	runner   *fakeRunner
	nextID   int
	statuses map[int]string
	rows     []entity.LeaveRequest
	err      error
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, _ int) ([]entity.LeaveRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeLeaveRepo) Insert(_ context.Context, _ *entity.LeaveRequest) (int, error) {
	f.runner.record("leave.insert")
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, leaveRequestID int, status string) error {
	f.runner.record("leave.status")
	if f.err != nil {
		return f.err
	}
	if f.statuses == nil {
		f.statuses = make(map[int]string)
	}
	f.statuses[leaveRequestID] = status
	return nil
}

type fakeDepartmentRepo struct {
	runner *fakeRunner
	nextID int
	byID   map[int]entity.Department
	err    error
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]entity.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Department, 0, len(f.byID))
	for _, d := range f.byID {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int) (*entity.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDepartmentRepo) Insert(_ context.Context, d *entity.Department) (int, error) {
	f.runner.record("department.insert")
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	if f.byID == nil {
		f.byID = make(map[int]entity.Department)
	}
	stored := *d
	stored.DepartmentID = f.nextID
	f.byID[f.nextID] = stored
	return f.nextID, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	f.runner.record("department.update")
	if f.err != nil {
		return f.err
	}
	f.byID[d.DepartmentID] = *d
	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id int) error {
	f.runner.record("department.delete")
	if f.err != nil {
		return f.err
	}
	delete(f.byID, id)
	return nil
}

type fakeJobOpeningRepo struct {
	runner *fakeRunner
	nextID int
	err    error
}

func (f *fakeJobOpeningRepo) List(_ context.Context) ([]entity.JobOpening, error) { return nil, f.err }

func (f *fakeJobOpeningRepo) GetByID(_ context.Context, _ int) (*entity.JobOpening, error) {
	return nil, f.err
}

func (f *fakeJobOpeningRepo) Insert(_ context.Context, _ *entity.JobOpening) (int, error) {
	f.runner.record("job.insert")
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeJobOpeningRepo) Update(_ context.Context, _ *entity.JobOpening) error {
	f.runner.record("job.update")
	return f.err
}

func (f *fakeJobOpeningRepo) Delete(_ context.Context, _ int) error {
	f.runner.record("job.delete")
	return f.err
}

type grantCall struct {
	roleID       int
	permissionID int
	grantedBy    int
}

type fakePermissionRepo struct {
	runner  *fakeRunner
	grants  []grantCall
	revokes []grantCall
	err     error
}

func (f *fakePermissionRepo) PermissionsByUser(_ context.Context, _ int) ([]string, error) {
	return nil, f.err
}

func (f *fakePermissionRepo) Grant(_ context.Context, roleID, permissionID, grantedBy int) error {
	f.runner.record("permission.grant")
	if f.err != nil {
		return f.err
	}
	f.grants = append(f.grants, grantCall{roleID: roleID, permissionID: permissionID, grantedBy: grantedBy})
	return nil
}

func (f *fakePermissionRepo) Revoke(_ context.Context, roleID, permissionID int) error {
	f.runner.record("permission.revoke")
	if f.err != nil {
		return f.err
	}
	f.revokes = append(f.revokes, grantCall{roleID: roleID, permissionID: permissionID})
	return nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLogEntry
	err     error
}

func (f *fakeAuditRepo) ListAll(_ context.Context) ([]entity.AuditLogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

// ── Email ────────────────────────────────────────────────────────────────────

type sentMail struct {
	to      string
	subject string
	plain   string
	html    string
}

type fakeEmail struct {
	sent []sentMail
	err  error
}

func (f *fakeEmail) Send(_ context.Context, to, subject, plain, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, plain: plain, html: html})
	return nil
}

// testLogger logger silencioso para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error", Service: "test"})
}
