package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Talento-api/internal/interfaces/http"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	// El catálogo compartido (public) debe existir antes de servir tráfico.
	if err := postgres.EnsureCatalog(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del catálogo")
	}

	m := metrics.New(cfg.Metrics.Prefix)

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	provisioner := postgres.NewProvisioner(pool, log)
	resolver := postgres.NewResolver(pool, tenantRepo, provisioner)
	seeder := postgres.NewBaselineSeeder()
	hasher := auth.NewBcryptHasher(0)

	onboardingUC := onboarding.NewUseCase(
		txRunner, tenantRepo, provisioner, seeder, resolver, hasher, log, m,
	)
	authUC := auth.NewUseCase(userRepo, membershipRepo, hasher, cfg.JWT)
	departmentUC := usecase.NewDepartmentUseCase()
	employeeUC := usecase.NewEmployeeUseCase()
	payrollUC := usecase.NewPayrollUseCase()
	leaveUC := usecase.NewLeaveUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	if cfg.Metrics.Enabled {
		app.Use(m.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

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
		OnboardingUC: onboardingUC,
		AuthUC:       authUC,
		DepartmentUC: departmentUC,
		EmployeeUC:   employeeUC,
		PayrollUC:    payrollUC,
		LeaveUC:      leaveUC,
		Resolver:     resolver,
		Metrics:      m,
		JWTSecret:    cfg.JWT.Secret,
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
