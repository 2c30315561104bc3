package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/infrastructure/email"
	"github.com/jhoicas/Talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Talento-api/internal/interfaces/http"
	"github.com/jhoicas/Talento-api/pkg/config"
	pkgjwt "github.com/jhoicas/Talento-api/pkg/jwt"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

func main() {
	// Load falla si JWT_SECRET está vacío: el proceso no arranca sin secreto.
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	jwtCfg := pkgjwt.Config{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		Audience:        cfg.JWT.Audience,
		ExpirationHours: cfg.JWT.ExpirationHours,
	}

	// Lecturas directas contra el pool; las mutaciones corren dentro del
	// SessionRunner con el actor atado a la transacción.
	credRepo := postgres.NewCredentialRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	jobRepo := postgres.NewJobOpeningRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	sessionRunner := postgres.NewSessionRunner(pool)

	mailSvc := email.NewSendGridService(cfg.Mail, log)

	authUC := auth.NewAuthUseCase(credRepo, permRepo, jwtCfg)
	userUC := usecase.NewUserUseCase(userRepo, auditRepo, sessionRunner, mailSvc, log)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, sessionRunner)
	jobUC := usecase.NewJobOpeningUseCase(jobRepo, sessionRunner)
	leaveUC := usecase.NewLeaveUseCase(leaveRepo, sessionRunner)
	payrollUC := usecase.NewPayrollUseCase(payrollRepo)
	rolePermUC := usecase.NewRolePermissionUseCase(sessionRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Talento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		DepartmentUC: departmentUC,
		JobOpeningUC: jobUC,
		LeaveUC:      leaveUC,
		PayrollUC:    payrollUC,
		RolePermUC:   rolePermUC,
		JWT:          jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
