package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// Asegura que TxRunner implementa onboarding.CatalogTxRunner.
var _ onboarding.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL sobre el
// catálogo compartido. Toda la escritura del paso CatalogWritten del
// onboarding pasa por aquí, así commit/rollback es atómico.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos del catálogo atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	tenants repository.TenantRepository,
	users repository.UserRepository,
	memberships repository.MembershipRepository,
	plans repository.PlanRepository,
	subs repository.SubscriptionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tenantRepo := NewTenantRepository(tx)
	userRepo := NewUserRepository(tx)
	membershipRepo := NewMembershipRepository(tx)
	planRepo := NewPlanRepository(tx)
	subRepo := NewSubscriptionRepository(tx)

	if err := fn(tenantRepo, userRepo, membershipRepo, planRepo, subRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
