package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

// Estados del onboarding. Se registran en los logs para poder reconstruir
// hasta dónde llegó un alta que falló.
const (
	stateStarted              = "started"
	stateCatalogWritten       = "catalog_written"
	stateNamespaceProvisioned = "namespace_provisioned"
	stateSeeded               = "seeded"
	stateCommitted            = "committed"
	stateFailed               = "failed"
)

// subscriptionWindow ventana inicial de la suscripción creada en el alta.
const subscriptionWindow = 30 * 24 * time.Hour

// suspendTimeout plazo propio de la escritura que marca un tenant suspended
// tras un aprovisionamiento fallido (desacoplada del contexto del caller).
const suspendTimeout = 5 * time.Second

// UseCase orquesta el alta de un tenant: escritura atómica del catálogo,
// aprovisionamiento del schema y seed inicial.
//
// El catálogo se escribe en una transacción; el DDL corre después del commit
// como paso idempotente aparte. Si el aprovisionamiento falla tras el
// reintento, el tenant queda suspended (nunca active sin schema) y el caso de
// uso devuelve domain.ErrPartialOnboarding: la recuperación es reconciliar el
// tenant suspendido (reejecutar el DDL, que es idempotente, y reactivarlo),
// no repetir el alta, porque la fila del catálogo ya existe.
type UseCase struct {
	tx       CatalogTxRunner
	tenants  repository.TenantRepository // atado al pool, para marcar suspended fuera de la tx
	prov     Provisioner
	seeder   Seeder
	resolver repository.TenantResolver
	hasher   Hasher
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewUseCase construye el orquestador del onboarding.
func NewUseCase(
	tx CatalogTxRunner,
	tenants repository.TenantRepository,
	prov Provisioner,
	seeder Seeder,
	resolver repository.TenantResolver,
	hasher Hasher,
	log *logger.Logger,
	m *metrics.Metrics,
) *UseCase {
	return &UseCase{
		tx:       tx,
		tenants:  tenants,
		prov:     prov,
		seeder:   seeder,
		resolver: resolver,
		hasher:   hasher,
		log:      log,
		metrics:  m,
	}
}

// Onboard da de alta un tenant completo: fila en el catálogo, usuario admin
// (reutilizado si el email ya existe), membresía, suscripción al plan indicado
// (o al plan por defecto), schema físico con las 16 tablas y seed inicial.
func (uc *UseCase) Onboard(ctx context.Context, in dto.OnboardTenantRequest) (*dto.OnboardTenantResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	// Sin identificador explícito se genera uno; un identificador provisto por
	// el cliente sigue sujeto a la allow-list de SchemaName.
	if strings.TrimSpace(in.TenantID) == "" {
		in.TenantID = uuid.NewString()
	}

	// SchemaName valida el identificador con la misma allow-list que usará el
	// DDL; rechazar aquí evita escribir un tenant imposible de aprovisionar.
	schema, err := uc.prov.SchemaName(in.TenantID)
	if err != nil {
		return nil, err
	}

	log := uc.log.WithTenant(in.TenantID)
	log.Info().Str("state", stateStarted).Str("schema", schema).Msg("onboarding iniciado")

	hash, err := uc.hasher.Hash(in.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	planName := in.PlanName
	if planName == "" {
		planName = entity.DefaultPlanName
	}

	now := time.Now().UTC()
	tenant := &entity.Tenant{
		ID:        in.TenantID,
		Name:      strings.TrimSpace(in.Name),
		Schema:    schema,
		Status:    entity.TenantStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var adminUserID, subStatus string

	// Paso 1: catálogo en una sola transacción. Si cualquier escritura falla,
	// no queda rastro del tenant y el DDL nunca llega a ejecutarse.
	start := time.Now()
	err = uc.tx.Run(ctx, func(
		tenants repository.TenantRepository,
		users repository.UserRepository,
		memberships repository.MembershipRepository,
		plans repository.PlanRepository,
		subs repository.SubscriptionRepository,
	) error {
		if err := tenants.Create(ctx, tenant); err != nil {
			return err
		}

		// Usuario admin: find-or-create por email. Un email existente se
		// reutiliza (el mismo usuario puede administrar varios tenants).
		user, err := users.GetByEmail(ctx, in.AdminEmail)
		if err != nil {
			return err
		}
		if user == nil {
			user = &entity.User{
				ID:           uuid.NewString(),
				Email:        in.AdminEmail,
				Name:         strings.TrimSpace(in.AdminName),
				PasswordHash: hash,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := users.Create(ctx, user); err != nil {
				return err
			}
		}
		adminUserID = user.ID

		if err := memberships.Create(ctx, &entity.Membership{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			TenantID:  tenant.ID,
			Role:      entity.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}

		plan, err := plans.GetByName(ctx, planName)
		if err != nil {
			return err
		}
		if plan == nil {
			return fmt.Errorf("%w: %q", domain.ErrPlanNotFound, planName)
		}

		sub := &entity.Subscription{
			ID:        uuid.NewString(),
			TenantID:  tenant.ID,
			PlanID:    plan.ID,
			Status:    entity.SubscriptionStatusActive,
			StartDate: now,
			EndDate:   now.Add(subscriptionWindow),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := subs.Create(ctx, sub); err != nil {
			return err
		}
		subStatus = sub.Status
		return nil
	})
	uc.metrics.OnboardingStepDur.WithLabelValues("catalog").Observe(time.Since(start).Seconds())
	if err != nil {
		uc.metrics.OnboardingTotal.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("state", stateFailed).Msg("onboarding: escritura de catálogo falló")
		return nil, err
	}
	log.Info().Str("state", stateCatalogWritten).Msg("catálogo confirmado")

	// Paso 2: DDL idempotente, un reintento. Todo el DDL es IF NOT EXISTS, así
	// el segundo intento es seguro aunque el primero quedara a medias.
	start = time.Now()
	provErr := uc.prov.Provision(ctx, schema)
	if provErr != nil {
		log.Warn().Err(provErr).Msg("aprovisionamiento falló, reintentando")
		provErr = uc.prov.Provision(ctx, schema)
	}
	uc.metrics.OnboardingStepDur.WithLabelValues("provision").Observe(time.Since(start).Seconds())
	if provErr != nil {
		// El tenant nunca queda active sin schema: suspended hasta reconciliar.
		// La suspensión corre en un contexto desacoplado del caller: un abort a
		// mitad del DDL no puede impedir que la marca se escriba.
		suspendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), suspendTimeout)
		err := uc.tenants.UpdateStatus(suspendCtx, tenant.ID, entity.TenantStatusSuspended)
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("no se pudo suspender el tenant tras fallo de aprovisionamiento")
		}
		uc.resolver.Invalidate(tenant.ID)
		uc.metrics.OnboardingTotal.WithLabelValues("partial").Inc()
		log.Error().Err(provErr).Str("state", stateFailed).Msg("onboarding parcial: catálogo confirmado, schema ausente")
		return nil, fmt.Errorf("%w: %w", domain.ErrPartialOnboarding, provErr)
	}
	log.Info().Str("state", stateNamespaceProvisioned).Msg("schema aprovisionado")

	// Paso 3: seed inicial vía el handle resuelto (misma ruta que usará todo
	// el tráfico tenant-scoped). Un fallo aquí no revierte el alta: el tenant
	// queda operativo y el seed se repone a mano.
	start = time.Now()
	if handle, rErr := uc.resolver.Resolve(ctx, tenant.ID); rErr != nil {
		log.Warn().Err(rErr).Msg("seed omitido: tenant no resoluble")
	} else if sErr := uc.seeder.SeedBaseline(ctx, handle); sErr != nil {
		log.Warn().Err(sErr).Msg("seed inicial falló")
	} else {
		log.Info().Str("state", stateSeeded).Msg("seed inicial aplicado")
	}
	uc.metrics.OnboardingStepDur.WithLabelValues("seed").Observe(time.Since(start).Seconds())

	uc.metrics.OnboardingTotal.WithLabelValues("committed").Inc()
	log.Info().Str("state", stateCommitted).Msg("onboarding completado")

	return &dto.OnboardTenantResponse{
		TenantID:     tenant.ID,
		Name:         tenant.Name,
		Schema:       tenant.Schema,
		Status:       tenant.Status,
		AdminUserID:  adminUserID,
		Plan:         planName,
		Subscription: subStatus,
		CreatedAt:    tenant.CreatedAt,
	}, nil
}

// ListTenants lista los tenants del catálogo (no borrados).
func (uc *UseCase) ListTenants(ctx context.Context, limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.tenants.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TenantResponse{
			ID:        t.ID,
			Name:      t.Name,
			Schema:    t.Schema,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validate(in dto.OnboardTenantRequest) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name requerido", domain.ErrValidation)
	case !strings.Contains(in.AdminEmail, "@"):
		return fmt.Errorf("%w: admin_email inválido", domain.ErrValidation)
	case strings.TrimSpace(in.AdminName) == "":
		return fmt.Errorf("%w: admin_name requerido", domain.ErrValidation)
	case len(in.AdminPassword) < 8:
		return fmt.Errorf("%w: admin_password de al menos 8 caracteres", domain.ErrValidation)
	}
	return nil
}
