package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// PlanRepository define el puerto para la tabla plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	// GetByName devuelve (nil, nil) cuando el plan no existe.
	GetByName(ctx context.Context, name string) (*entity.Plan, error)
	List(ctx context.Context) ([]*entity.Plan, error)
}

// SubscriptionRepository define el puerto para la tabla subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	// GetCurrentByTenant devuelve la suscripción active o trialing del tenant,
	// o (nil, nil) si no tiene ninguna vigente.
	GetCurrentByTenant(ctx context.Context, tenantID string) (*entity.Subscription, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PaymentRepository define el puerto para la tabla payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListBySubscription(ctx context.Context, subscriptionID string) ([]*entity.Payment, error)
}
