package onboarding

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción del catálogo compartido.
// Todos los repos que recibe fn están atados a la misma tx: o confirma todo el
// paso de catálogo del onboarding, o no queda nada.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		tenants repository.TenantRepository,
		users repository.UserRepository,
		memberships repository.MembershipRepository,
		plans repository.PlanRepository,
		subs repository.SubscriptionRepository,
	) error) error
}

// Provisioner crea el schema físico de un tenant. Provision debe ser
// idempotente: el orquestador lo reintenta ante fallos.
type Provisioner interface {
	SchemaName(tenantID string) (string, error)
	Provision(ctx context.Context, schema string) error
}

// Seeder inserta los datos iniciales del tenant recién aprovisionado.
type Seeder interface {
	SeedBaseline(ctx context.Context, h repository.TenantHandle) error
}

// Hasher abstrae el hashing de contraseñas (bcrypt en producción).
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) error
}
