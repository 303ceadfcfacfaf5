package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

// Planes disponibles. El seed es idempotente: los inserts de planes hacen
// ON CONFLICT DO NOTHING y el onboarding del tenant demo falla con conflicto
// si ya existe (se ignora).
var plans = []entity.Plan{
	{Name: "Basic", PriceMonthly: 0, PriceYearly: 0, Features: `{"max_employees": 25}`},
	{Name: "Pro", PriceMonthly: 4900, PriceYearly: 49900, Features: `{"max_employees": 250}`},
	{Name: "Enterprise", PriceMonthly: 19900, PriceYearly: 199900, Features: `{"max_employees": -1}`},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureCatalog(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del catálogo")
	}

	planRepo := postgres.NewPlanRepository(pool)
	now := time.Now().UTC()
	for _, p := range plans {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := planRepo.Create(ctx, &p); err != nil {
			log.Fatal().Err(err).Str("plan", p.Name).Msg("seed de plan")
		}
		log.Info().Str("plan", p.Name).Msg("plan asegurado")
	}

	// Tenant demo para desarrollo local.
	if cfg.App.Env != "development" {
		log.Info().Msg("seed completado (sin tenant demo fuera de development)")
		return
	}

	tenantRepo := postgres.NewTenantRepository(pool)
	provisioner := postgres.NewProvisioner(pool, log)
	resolver := postgres.NewResolver(pool, tenantRepo, provisioner)
	onboardingUC := onboarding.NewUseCase(
		postgres.NewTxRunner(pool), tenantRepo, provisioner,
		postgres.NewBaselineSeeder(), resolver, auth.NewBcryptHasher(0),
		log, metrics.New(cfg.Metrics.Prefix),
	)

	out, err := onboardingUC.Onboard(ctx, dto.OnboardTenantRequest{
		TenantID:      "demo",
		Name:          "Demo S.A.S.",
		AdminEmail:    "admin@demo.local",
		AdminName:     "Admin Demo",
		AdminPassword: "demo-password-123",
		PlanName:      "Basic",
	})
	if err != nil {
		log.Warn().Err(err).Msg("tenant demo no creado (puede existir ya)")
		return
	}
	log.Info().Str("schema", out.Schema).Msg("tenant demo creado")

	// Primer pago de la suscripción demo (plan Basic, monto 0).
	if sub, err := postgres.NewSubscriptionRepository(pool).GetCurrentByTenant(ctx, out.TenantID); err == nil && sub != nil {
		paidAt := time.Now().UTC()
		payment := &entity.Payment{
			ID:             uuid.NewString(),
			SubscriptionID: sub.ID,
			Amount:         0,
			Status:         entity.PaymentStatusPaid,
			PaidAt:         &paidAt,
			CreatedAt:      paidAt,
			UpdatedAt:      paidAt,
		}
		if err := postgres.NewPaymentRepository(pool).Create(ctx, payment); err != nil {
			log.Warn().Err(err).Msg("pago inicial demo no registrado")
		}
	}

	if handle, err := resolver.Resolve(ctx, out.TenantID); err == nil {
		if emp, err := postgres.NewBaselineSeeder().SeedDemoEmployee(ctx, handle); err == nil {
			log.Info().Str("employee", emp.EmployeeNumber).Msg("empleado demo creado")
		}
	}
}
