package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Create persiste un plan (lo usa el seeder).
func (r *PlanRepo) Create(ctx context.Context, p *entity.Plan) error {
	query := `
		INSERT INTO plans (id, name, price_monthly, price_yearly, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.PriceMonthly, p.PriceYearly, p.Features, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByName obtiene un plan por nombre. Devuelve (nil, nil) si no existe.
func (r *PlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	query := `
		SELECT id, name, price_monthly, price_yearly, COALESCE(features, ''), created_at, updated_at
		FROM plans WHERE name = $1`
	var p entity.Plan
	err := r.q.QueryRow(ctx, query, name).Scan(
		&p.ID, &p.Name, &p.PriceMonthly, &p.PriceYearly, &p.Features, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan by name: %w", err)
	}
	return &p, nil
}

// List devuelve todos los planes.
func (r *PlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, price_monthly, price_yearly, COALESCE(features, ''), created_at, updated_at
		FROM plans ORDER BY price_monthly`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceMonthly, &p.PriceYearly, &p.Features, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación del puerto SubscriptionRepository.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste una suscripción. Rechaza con domain.ErrConflict si el tenant
// ya tiene una suscripción active o trialing (invariante de una vigente a la vez).
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	current, err := r.GetCurrentByTenant(ctx, s.TenantID)
	if err != nil {
		return err
	}
	if current != nil && (s.Status == entity.SubscriptionStatusActive || s.Status == entity.SubscriptionStatusTrialing) {
		return domain.ErrConflict
	}
	query := `
		INSERT INTO subscriptions (id, tenant_id, plan_id, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.TenantID, s.PlanID, s.Status, s.StartDate, s.EndDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetCurrentByTenant devuelve la suscripción active o trialing del tenant; (nil, nil) si no hay.
func (r *SubscriptionRepo) GetCurrentByTenant(ctx context.Context, tenantID string) (*entity.Subscription, error) {
	query := `
		SELECT id, tenant_id, plan_id, status, start_date, end_date, created_at, updated_at
		FROM subscriptions
		WHERE tenant_id = $1 AND status IN ('active', 'trialing')
		ORDER BY created_at DESC LIMIT 1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, tenantID).Scan(
		&s.ID, &s.TenantID, &s.PlanID, &s.Status, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current subscription: %w", err)
	}
	return &s, nil
}

// UpdateStatus cambia el estado de una suscripción.
func (r *SubscriptionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE subscriptions SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update subscription status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, subscription_id, amount, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SubscriptionID, p.Amount, p.Status, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListBySubscription lista los pagos de una suscripción.
func (r *PaymentRepo) ListBySubscription(ctx context.Context, subscriptionID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, subscription_id, amount, status, paid_at, created_at, updated_at
		FROM payments WHERE subscription_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.SubscriptionID, &p.Amount, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
