package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
)

// Nombres de permisos tal como existen en core.permissions. La resolución es
// por request, así que un grant/revoke se refleja acá de inmediato.
const (
	PermViewUsers         = "ViewUsers"
	PermManageUsers       = "ManageUsers"
	PermViewAuditLogs     = "ViewAuditLogs"
	PermManageDepartments = "ManageDepartments"
	PermManageJobOpenings = "ManageJobOpenings"
	PermEditLeave         = "EditLeave"
	PermApproveLeave      = "ApproveLeave"
	PermViewPayroll       = "ViewPayroll"
	PermManagePermissions = "ManagePermissions"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	DepartmentUC *usecase.DepartmentUseCase
	JobOpeningUC *usecase.JobOpeningUseCase
	LeaveUC      *usecase.LeaveUseCase
	PayrollUC    *usecase.PayrollUseCase
	RolePermUC   *usecase.RolePermissionUseCase
	JWT          pkgjwt.Config
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT))

	// Permisos efectivos del usuario autenticado
	protected.Get("/auth/permissions", authHandler.Permissions)

	// Usuarios y auditoría (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/", RequirePermission(PermViewUsers, deps.AuthUC), userHandler.List)
	users.Post("/", RequirePermission(PermManageUsers, deps.AuthUC), userHandler.AddUser)
	protected.Get("/audit-log", RequirePermission(PermViewAuditLogs, deps.AuthUC), userHandler.AuditLog)

	// Departamentos (protegido; mutaciones con permiso)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Post("/", RequirePermission(PermManageDepartments, deps.AuthUC), departmentHandler.Create)
	departments.Put("/:id", RequirePermission(PermManageDepartments, deps.AuthUC), departmentHandler.Update)
	departments.Delete("/:id", RequirePermission(PermManageDepartments, deps.AuthUC), departmentHandler.Delete)

	// Vacantes (protegido; mutaciones con permiso)
	jobs := protected.Group("/job-openings")
	jobHandler := NewJobOpeningHandler(deps.JobOpeningUC)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Post("/", RequirePermission(PermManageJobOpenings, deps.AuthUC), jobHandler.Create)
	jobs.Put("/:id", RequirePermission(PermManageJobOpenings, deps.AuthUC), jobHandler.Update)
	jobs.Delete("/:id", RequirePermission(PermManageJobOpenings, deps.AuthUC), jobHandler.Delete)

	// Licencias (protegido; aprobación con permiso propio)
	leaves := protected.Group("/leaves")
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaves.Get("/employee/:employeeId", leaveHandler.ListByEmployee)
	leaves.Post("/", RequirePermission(PermEditLeave, deps.AuthUC), leaveHandler.Create)
	leaves.Put("/:id/approve", RequirePermission(PermApproveLeave, deps.AuthUC), leaveHandler.Approve)
	leaves.Put("/:id/reject", RequirePermission(PermApproveLeave, deps.AuthUC), leaveHandler.Reject)

	// Nómina (protegido, solo lectura)
	payroll := protected.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payroll.Get("/employee/:employeeId", RequirePermission(PermViewPayroll, deps.AuthUC), payrollHandler.HistoryByEmployee)

	// Permisos por rol (protegido; administración)
	rolePerms := protected.Group("/role-permissions")
	rolePermHandler := NewRolePermissionHandler(deps.RolePermUC)
	rolePerms.Post("/", RequirePermission(PermManagePermissions, deps.AuthUC), rolePermHandler.Grant)
	rolePerms.Delete("/", RequirePermission(PermManagePermissions, deps.AuthUC), rolePermHandler.Revoke)
}
